// internal/component/enemy.go
package component

import (
	"time"

	"go-star-shooter/internal/defs"
	"go-star-shooter/pkg/geom"
)

// WeavePattern — параметры синусоидального движения конкретного врага.
type WeavePattern struct {
	BaseX  float64
	Amp    float64
	Freq   float64 // radians per millisecond
	Offset float64
}

// Enemy — живой вражеский корабль. Shield равен nil у архетипов без щита
// и после того, как щит сломан.
type Enemy struct {
	Def          *defs.EnemyDefinition
	Pos          geom.Vec2
	Vel          geom.Vec2
	Rotation     float64
	HP           int
	MaxHP        int
	Radius       float64
	DisplayWidth float64
	Weave        *WeavePattern
	Shield       *Shield
	SpawnedAt    time.Duration
	NextShotAt   time.Duration
	ContactUntil time.Duration // no contact damage either way before this
	LastBeamHit  time.Duration
	BeamHitOnce  bool
	FlashUntil   time.Duration
}

// Kind returns the archetype discriminant.
func (e *Enemy) Kind() defs.EnemyKind {
	return e.Def.Kind
}

// TakeDamage снимает здоровье не ниже нуля и сообщает, погиб ли враг.
func (e *Enemy) TakeDamage(n int) bool {
	e.HP -= n
	if e.HP <= 0 {
		e.HP = 0
		return true
	}
	return false
}
