package app

import (
	"testing"
	"time"

	"go-star-shooter/internal/defs"
)

func TestAmmoLabels(t *testing.T) {
	g := newTestGame(t, 5)
	blue := &g.World.Weapons[defs.WeaponBlue]
	if got, warn := AmmoLabel(blue, 0); got != "ammo 15/15" || warn {
		t.Errorf("Expected 'ammo 15/15' without warning, got %q warn=%v", got, warn)
	}

	red := &g.World.Weapons[defs.WeaponRed]
	if got, _ := AmmoLabel(red, 0); got != "ammo ready" {
		t.Errorf("Expected 'ammo ready', got %q", got)
	}
	g.Step(frame, Input{SwitchRed: true})
	g.Step(frame, Input{Fire: true})
	now := g.Clock.Now()
	if got, warn := AmmoLabel(red, now); got != "ammo 3.0s" || warn {
		t.Errorf("Expected 'ammo 3.0s' while firing, got %q warn=%v", got, warn)
	}
	g.WeaponSystem.BeginReload(defs.WeaponRed)
	if got, warn := AmmoLabel(red, now); got != "ammo 3.0s" || !warn {
		t.Errorf("Expected warning 'ammo 3.0s' while reloading, got %q warn=%v", got, warn)
	}
}

func TestHUDSnapshot(t *testing.T) {
	g := newTestGame(t, 6)
	g.Step(frame, Input{Reload: true})
	g.Step(time.Second, Input{})
	v := g.HUD()
	if v.HP != 5 || v.MaxHP != 5 {
		t.Errorf("Expected 5/5 hp, got %d/%d", v.HP, v.MaxHP)
	}
	w := v.Weapons[defs.WeaponBlue]
	if !w.Active || !w.Reloading {
		t.Fatalf("Expected active reloading blue slot, got %+v", w)
	}
	if w.Reload < 0.3 || w.Reload > 0.4 {
		t.Errorf("Expected about a third of the reload done, got %.2f", w.Reload)
	}
	if v.ReloadLabel == "" {
		t.Error("Expected a reload countdown")
	}
	if v.Left != 5*time.Minute-v.Elapsed {
		t.Errorf("Expected time left to mirror elapsed, got %v and %v", v.Left, v.Elapsed)
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[time.Duration]string{
		0:                             "0:00",
		59 * time.Second:              "0:59",
		5*time.Minute + 3*time.Second: "5:03",
		-time.Second:                  "0:00",
	}
	for d, want := range cases {
		if got := FormatClock(d); got != want {
			t.Errorf("Expected %q for %v, got %q", want, d, got)
		}
	}
}
