// internal/component/pickup.go
package component

import (
	"go-star-shooter/internal/defs"
	"go-star-shooter/pkg/geom"
)

// Pickup — падающий бонус.
type Pickup struct {
	Kind      defs.PickupKind
	Pos       geom.Vec2
	FallSpeed float64
	Radius    float64
	Heal      int
	Spin      float64
}
