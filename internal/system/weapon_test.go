package system

import (
	"testing"
	"time"

	"go-star-shooter/internal/component"
	"go-star-shooter/internal/defs"
	"go-star-shooter/internal/event"
	"go-star-shooter/internal/utils"
)

func TestBlueMagazineEmptiesThenReloads(t *testing.T) {
	r := newRig(t, nil, 2)
	shots := 0
	for i := 0; i < 20; i++ {
		if r.weapons.Fire() == FireShot {
			shots++
		}
		r.advance(150 * time.Millisecond)
	}
	if shots != 15 {
		t.Errorf("Expected 15 shots from a full magazine, got %d", shots)
	}
	if r.world.PlayerBullets.Active() != 15 {
		t.Errorf("Expected 15 live bullets, got %d", r.world.PlayerBullets.Active())
	}
	r.advance(3 * time.Second)
	slot := &r.world.Weapons[defs.WeaponBlue]
	if slot.Ammo != 15 {
		t.Errorf("Expected magazine refilled after 3s reload, got %d", slot.Ammo)
	}
	if r.events[event.ReloadFinished] != 1 {
		t.Errorf("Expected one ReloadFinished, got %d", r.events[event.ReloadFinished])
	}
}

func TestFireDelayLimitsRate(t *testing.T) {
	r := newRig(t, nil, 2)
	if got := r.weapons.Fire(); got != FireShot {
		t.Fatalf("Expected first pull to shoot, got %v", got)
	}
	if got := r.weapons.Fire(); got != FireNone {
		t.Errorf("Expected pull within fire delay to do nothing, got %v", got)
	}
	r.advance(149 * time.Millisecond)
	if got := r.weapons.Fire(); got != FireNone {
		t.Errorf("Expected pull at 149ms to do nothing, got %v", got)
	}
	r.advance(time.Millisecond)
	if got := r.weapons.Fire(); got != FireShot {
		t.Errorf("Expected pull at 150ms to shoot, got %v", got)
	}
}

// Ammo never goes below zero or above the magazine, and every shot fired
// since the last refill is accounted for.
func TestAmmoConservationUnderRandomInput(t *testing.T) {
	r := newRig(t, nil, 2)
	rng := utils.NewPRNGService(7)
	var sinceRefill [defs.WeaponCount]int
	r.dispatcher.Subscribe(event.WeaponFired, event.ListenerFunc(func(e event.Event) {
		sinceRefill[e.Data.(event.WeaponData).Weapon]++
	}))
	r.dispatcher.Subscribe(event.ReloadFinished, event.ListenerFunc(func(e event.Event) {
		sinceRefill[e.Data.(event.ReloadFinishedData).Weapon] = 0
	}))

	for step := 0; step < 2000; step++ {
		switch rng.Intn(10) {
		case 0:
			r.weapons.Reload()
		case 1:
			r.weapons.Switch(defs.WeaponKind(rng.Intn(int(defs.WeaponCount))))
		default:
			r.weapons.Fire()
		}
		r.advance(time.Duration(rng.Between(1, 400)) * time.Millisecond)
		r.world.PlayerBullets.Clear()

		for k := range r.world.Weapons {
			slot := &r.world.Weapons[k]
			if slot.Ammo < 0 || slot.Ammo > slot.Def.AmmoMax {
				t.Fatalf("step %d: %v ammo out of range: %d", step, slot.Kind(), slot.Ammo)
			}
			if slot.Ammo != slot.Def.AmmoMax-sinceRefill[k] {
				t.Fatalf("step %d: %v expected ammo %d, got %d",
					step, slot.Kind(), slot.Def.AmmoMax-sinceRefill[k], slot.Ammo)
			}
		}
	}
}

func TestSwitchKeepsOutgoingReload(t *testing.T) {
	r := newRig(t, nil, 2)
	r.weapons.Fire()
	r.advance(200 * time.Millisecond)
	if !r.weapons.Reload() {
		t.Fatal("Expected manual reload to start")
	}
	blue := &r.world.Weapons[defs.WeaponBlue]
	deadline := blue.ReloadEndsAt

	r.advance(time.Second)
	remaining := blue.ReloadRemaining(r.clock.Now())
	r.weapons.Switch(defs.WeaponRed)
	if blue.ReloadEndsAt != deadline || blue.ReloadRemaining(r.clock.Now()) != remaining {
		t.Errorf("Expected reload deadline untouched by switch, got %v (was %v)", blue.ReloadEndsAt, deadline)
	}
	r.weapons.Switch(defs.WeaponBlue)
	if blue.ReloadRemaining(r.clock.Now()) != remaining {
		t.Errorf("Expected %v remaining after switching back, got %v", remaining, blue.ReloadRemaining(r.clock.Now()))
	}

	r.weapons.Switch(defs.WeaponRed)
	r.advance(2 * time.Second)
	if blue.Reloading || blue.Ammo != blue.Def.AmmoMax {
		t.Errorf("Expected inactive blue slot to finish reloading on schedule, got reloading=%v ammo=%d",
			blue.Reloading, blue.Ammo)
	}
}

func TestReloadIsIdempotent(t *testing.T) {
	r := newRig(t, nil, 2)
	r.weapons.Fire()
	if !r.weapons.BeginReload(defs.WeaponBlue) {
		t.Fatal("Expected first reload to start")
	}
	deadline := r.world.Weapons[defs.WeaponBlue].ReloadEndsAt
	pending := r.scheduler.Len()
	r.advance(time.Second)
	if r.weapons.BeginReload(defs.WeaponBlue) {
		t.Error("Expected second reload to be ignored")
	}
	if r.world.Weapons[defs.WeaponBlue].ReloadEndsAt != deadline {
		t.Error("Expected reload deadline unchanged")
	}
	if r.scheduler.Len() != pending {
		t.Errorf("Expected %d pending timers, got %d", pending, r.scheduler.Len())
	}
	if got := r.weapons.Fire(); got != FireNone {
		t.Errorf("Expected fire during reload to do nothing, got %v", got)
	}
}

func TestFullReloadIsReported(t *testing.T) {
	r := newRig(t, nil, 2)
	var finished event.ReloadFinishedData
	r.dispatcher.Subscribe(event.ReloadFinished, event.ListenerFunc(func(e event.Event) {
		finished = e.Data.(event.ReloadFinishedData)
	}))
	r.weapons.Reload()
	r.advance(3 * time.Second)
	if !finished.Full || !finished.Active {
		t.Errorf("Expected full active reload, got %+v", finished)
	}
	if r.world.AmmoFlash.Text != "ammo full" {
		t.Errorf("Expected 'ammo full' flash, got %q", r.world.AmmoFlash.Text)
	}
}

func TestBeamWindowThenForcedReload(t *testing.T) {
	r := newRig(t, nil, 2)
	r.weapons.Switch(defs.WeaponRed)
	red := &r.world.Weapons[defs.WeaponRed]

	if got := r.weapons.Fire(); got != FireBeam {
		t.Fatalf("Expected beam on first pull, got %v", got)
	}
	if red.Ammo != 0 {
		t.Errorf("Expected charge spent, got %d", red.Ammo)
	}
	r.advance(2 * time.Second)
	if got := r.weapons.Fire(); got != FireBeam {
		t.Errorf("Expected beam to stay on inside the window, got %v", got)
	}
	if r.events[event.WeaponFired] != 1 {
		t.Errorf("Expected one WeaponFired for the whole window, got %d", r.events[event.WeaponFired])
	}

	r.advance(1001 * time.Millisecond)
	if !red.Reloading {
		t.Fatal("Expected expired window to force a reload")
	}
	if got := r.weapons.Fire(); got != FireNone {
		t.Errorf("Expected no beam while reloading, got %v", got)
	}
	r.advance(3 * time.Second)
	if red.Reloading || red.Ammo != 1 {
		t.Errorf("Expected recharged beam, got reloading=%v ammo=%d", red.Reloading, red.Ammo)
	}
}

func TestBeamExpiresWhileInactive(t *testing.T) {
	r := newRig(t, nil, 2)
	r.weapons.Switch(defs.WeaponRed)
	r.weapons.Fire()
	r.weapons.Switch(defs.WeaponBlue)
	r.advance(3001 * time.Millisecond)
	if !r.world.Weapons[defs.WeaponRed].Reloading {
		t.Error("Expected inactive beam slot to start reloading when its window ran out")
	}
}

func TestNoFireAfterGameOver(t *testing.T) {
	r := newRig(t, nil, 2)
	r.run.EndGame(component.ResultDefeat)
	if got := r.weapons.Fire(); got != FireNone {
		t.Errorf("Expected no fire after game over, got %v", got)
	}
	if r.weapons.Switch(defs.WeaponRed) {
		t.Error("Expected switch ignored after game over")
	}
}
