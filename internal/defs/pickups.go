// internal/defs/pickups.go
package defs

// PickupDefinition описывает падающий бонус.
type PickupDefinition struct {
	Kind      PickupKind
	FallSpeed float64
	Radius    float64
	Heal      int
}

// Pickups возвращает определения бонусов по типу.
func Pickups() map[PickupKind]PickupDefinition {
	return map[PickupKind]PickupDefinition{
		PickupGear:   {Kind: PickupGear, FallSpeed: 70, Radius: 16, Heal: 1},
		PickupShield: {Kind: PickupShield, FallSpeed: 60, Radius: 18},
	}
}
