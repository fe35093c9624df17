// internal/defs/types.go
package defs

// EnemyKind is the archetype discriminant carried by every enemy.
type EnemyKind string

const (
	EnemyGunship     EnemyKind = "GUNSHIP"
	EnemyWeaver      EnemyKind = "WEAVER"
	EnemyDreadnought EnemyKind = "DREADNOUGHT"
)

// PickupKind — что делает бонус при касании игрока.
type PickupKind string

const (
	PickupGear   PickupKind = "GEAR"   // +hp
	PickupShield PickupKind = "SHIELD" // выдаёт игроку щит
)

// WeaponKind indexes the player's weapon slots.
type WeaponKind int

const (
	WeaponBlue WeaponKind = iota
	WeaponRed
	WeaponCount
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponBlue:
		return "blue"
	case WeaponRed:
		return "red"
	}
	return "unknown"
}

// FireMode — способ стрельбы оружия.
type FireMode int

const (
	FireProjectile FireMode = iota
	FireBeam
)
