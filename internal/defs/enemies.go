// internal/defs/enemies.go
package defs

import (
	"fmt"
	"time"
)

// WeaveDefinition — синусоидальное движение по горизонтали.
type WeaveDefinition struct {
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"` // radians per millisecond
}

// ShieldDefinition — фронтальный дуговой щит врага.
type ShieldDefinition struct {
	Health       int     `json:"health"`
	ArcDegrees   float64 `json:"arc_degrees"`
	RadiusFactor float64 `json:"radius_factor"` // times display width
	Thickness    float64 `json:"thickness"`
}

// GunDefinition — прицельная стрельба по игроку.
type GunDefinition struct {
	IntervalMinMs  int     `json:"interval_min_ms"`
	IntervalMaxMs  int     `json:"interval_max_ms"`
	FirstShotMinMs int     `json:"first_shot_min_ms"`
	FirstShotMaxMs int     `json:"first_shot_max_ms"`
	BulletSpeed    float64 `json:"bullet_speed"`
	Damage         int     `json:"damage"`
}

// DropEntry — один бросок на выпадение бонуса при уничтожении врага.
type DropEntry struct {
	Kind   PickupKind `json:"kind"`
	Chance float64    `json:"chance"`
}

// EnemyDefinition содержит все статические данные для конкретного типа врага.
type EnemyDefinition struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Kind          EnemyKind         `json:"kind"`
	Health        int               `json:"health"`
	SpeedMin      float64           `json:"speed_min"`
	SpeedMax      float64           `json:"speed_max"`
	Scale         float64           `json:"scale"`
	Weight        int               `json:"weight"`
	HitboxRadius  float64           `json:"hitbox_radius"`
	MaxAlive      int               `json:"max_alive"`   // 0 = без лимита на тип
	ScarcityMs    int               `json:"scarcity_ms"` // 0 = никогда не форсируется
	ContactDamage int               `json:"contact_damage"`
	Kamikaze      bool              `json:"kamikaze"` // таран сразу уничтожает игрока
	Weave         *WeaveDefinition  `json:"weave,omitempty"`
	Shield        *ShieldDefinition `json:"shield,omitempty"`
	Gun           *GunDefinition    `json:"gun,omitempty"`
	Drops         []DropEntry       `json:"drops,omitempty"`
}

// ScarcityWindow is how long the archetype may be absent before the spawn
// director forces it.
func (d *EnemyDefinition) ScarcityWindow() time.Duration {
	return time.Duration(d.ScarcityMs) * time.Millisecond
}

// EnemyCatalog — упорядоченный список архетипов, порядок важен для взвешенного броска.
type EnemyCatalog []EnemyDefinition

// ByID returns the definition with the given id.
func (c EnemyCatalog) ByID(id string) (*EnemyDefinition, bool) {
	for i := range c {
		if c[i].ID == id {
			return &c[i], true
		}
	}
	return nil, false
}

// Scarce returns the archetypes that the director must force when absent.
func (c EnemyCatalog) Scarce() []*EnemyDefinition {
	var out []*EnemyDefinition
	for i := range c {
		if c[i].ScarcityMs > 0 {
			out = append(out, &c[i])
		}
	}
	return out
}

// Validate проверяет каталог на значения, с которыми симуляция не работает.
func (c EnemyCatalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("enemy catalog is empty")
	}
	seen := make(map[string]bool, len(c))
	total := 0
	for _, d := range c {
		if d.ID == "" {
			return fmt.Errorf("enemy definition without id")
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate enemy id %q", d.ID)
		}
		seen[d.ID] = true
		if d.Health <= 0 {
			return fmt.Errorf("enemy %q: health must be positive", d.ID)
		}
		if d.SpeedMin > d.SpeedMax {
			return fmt.Errorf("enemy %q: speed_min above speed_max", d.ID)
		}
		if d.Weight < 0 {
			return fmt.Errorf("enemy %q: negative weight", d.ID)
		}
		if d.HitboxRadius <= 0 {
			return fmt.Errorf("enemy %q: hitbox_radius must be positive", d.ID)
		}
		if d.Gun != nil && d.Gun.IntervalMinMs > d.Gun.IntervalMaxMs {
			return fmt.Errorf("enemy %q: gun interval min above max", d.ID)
		}
		total += d.Weight
	}
	if total == 0 {
		return fmt.Errorf("enemy catalog has zero total weight")
	}
	return nil
}

// DefaultEnemyCatalog возвращает встроенные архетипы.
func DefaultEnemyCatalog() EnemyCatalog {
	return EnemyCatalog{
		{
			ID:            "ENEMY_GUNSHIP",
			Name:          "Gunship",
			Kind:          EnemyGunship,
			Health:        4,
			SpeedMin:      90,
			SpeedMax:      160,
			Scale:         1,
			Weight:        6,
			HitboxRadius:  30,
			ContactDamage: 1,
			Gun: &GunDefinition{
				IntervalMinMs:  900,
				IntervalMaxMs:  1400,
				FirstShotMinMs: 800,
				FirstShotMaxMs: 1400,
				BulletSpeed:    280,
				Damage:         1,
			},
		},
		{
			ID:            "ENEMY_WEAVER",
			Name:          "Weaver",
			Kind:          EnemyWeaver,
			Health:        2,
			SpeedMin:      220,
			SpeedMax:      320,
			Scale:         1,
			Weight:        4,
			HitboxRadius:  26,
			MaxAlive:      1,
			ContactDamage: 1,
			Kamikaze:      true,
			Weave:         &WeaveDefinition{Amplitude: 120, Frequency: 0.0025},
			Drops:         []DropEntry{{Kind: PickupShield, Chance: 1}},
		},
		{
			ID:            "ENEMY_DREADNOUGHT",
			Name:          "Dreadnought",
			Kind:          EnemyDreadnought,
			Health:        7,
			SpeedMin:      55,
			SpeedMax:      95,
			Scale:         2,
			Weight:        1,
			HitboxRadius:  40,
			ScarcityMs:    15000,
			ContactDamage: 2,
			Shield: &ShieldDefinition{
				Health:       4,
				ArcDegrees:   90,
				RadiusFactor: 0.8,
				Thickness:    8,
			},
			Drops: []DropEntry{{Kind: PickupGear, Chance: 1}},
		},
	}
}
