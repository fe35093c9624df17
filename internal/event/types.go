// internal/event/types.go
package event

import (
	"go-star-shooter/internal/component"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/types"
	"go-star-shooter/pkg/geom"
)

const (
	EnemySpawned    EventType = "EnemySpawned"
	EnemyKilled     EventType = "EnemyKilled"  // Враг уничтожен игроком
	EnemyEscaped    EventType = "EnemyEscaped" // Враг ушёл за нижний край
	EnemyFired      EventType = "EnemyFired"
	PlayerDamaged   EventType = "PlayerDamaged"
	ShieldAbsorbed  EventType = "ShieldAbsorbed"
	ShieldBroken    EventType = "ShieldBroken"
	WeaponFired     EventType = "WeaponFired"
	WeaponSwitched  EventType = "WeaponSwitched"
	ReloadStarted   EventType = "ReloadStarted"
	ReloadFinished  EventType = "ReloadFinished"
	PickupCollected EventType = "PickupCollected"
	GameEnded       EventType = "GameEnded"
)

// KillCause says which path destroyed an enemy.
type KillCause int

const (
	KilledByBullet KillCause = iota
	KilledByBeam
	KilledByContact
)

type EnemySpawnedData struct {
	ID   types.EntityID
	Kind defs.EnemyKind
}

type EnemyKilledData struct {
	ID    types.EntityID
	Def   *defs.EnemyDefinition
	Pos   geom.Vec2
	Cause KillCause
}

type EnemyEscapedData struct {
	ID   types.EntityID
	Kind defs.EnemyKind
}

type PlayerDamagedData struct {
	Amount int
	HP     int
}

type ShieldData struct {
	Side component.Side
	Pos  geom.Vec2
	HP   int
}

type WeaponData struct {
	Weapon defs.WeaponKind
}

type ReloadFinishedData struct {
	Weapon defs.WeaponKind
	Active bool // reloaded slot is the one in hand
	Full   bool // slot was already full when the reload began
}

type PickupData struct {
	Kind defs.PickupKind
	Pos  geom.Vec2
}

type GameEndedData struct {
	Result component.RunResult
	Kills  int
}
