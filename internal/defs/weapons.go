// internal/defs/weapons.go
package defs

import "time"

// WeaponDefinition — настройки одного слота оружия игрока.
type WeaponDefinition struct {
	Kind           WeaponKind
	Name           string
	Mode           FireMode
	AmmoMax        int
	Damage         int
	FireDelay      time.Duration
	ReloadDuration time.Duration
	BulletSpeed    float64       // projectile only
	FireWindow     time.Duration // только луч: длительность одного заряда
	BeamLength     float64
	BeamTick       time.Duration // только луч: минимум между попаданиями по одному врагу
}

// DefaultWeapons returns the two player weapons indexed by WeaponKind.
func DefaultWeapons() [WeaponCount]WeaponDefinition {
	return [WeaponCount]WeaponDefinition{
		WeaponBlue: {
			Kind:           WeaponBlue,
			Name:           "Blaster",
			Mode:           FireProjectile,
			AmmoMax:        15,
			Damage:         1,
			FireDelay:      150 * time.Millisecond,
			ReloadDuration: 3000 * time.Millisecond,
			BulletSpeed:    620,
		},
		WeaponRed: {
			Kind:           WeaponRed,
			Name:           "Beam",
			Mode:           FireBeam,
			AmmoMax:        1,
			Damage:         3,
			FireDelay:      150 * time.Millisecond,
			ReloadDuration: 3000 * time.Millisecond,
			FireWindow:     3000 * time.Millisecond,
			BeamLength:     500,
			BeamTick:       1000 * time.Millisecond,
		},
	}
}
