// internal/app/input.go
package app

import "go-star-shooter/internal/system"

// Input is one frame of player intent, filled in by the scene from the
// keyboard. Fire and the directions are held states; the rest are presses.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool
	Reload                bool
	SwitchBlue            bool
	SwitchRed             bool
}

// Controls returns the directional part of the input.
func (in Input) Controls() system.Controls {
	return system.Controls{Left: in.Left, Right: in.Right, Up: in.Up, Down: in.Down}
}
