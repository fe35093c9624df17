package event

import "testing"

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, 2) }))
	d.Emit(EnemyKilled, nil)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("Expected [1 2], got %v", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(GameEnded, a)
	d.Subscribe(GameEnded, b)
	d.Unsubscribe(GameEnded, a)
	d.Emit(GameEnded, GameEndedData{Kills: 3})
	if len(a.got) != 0 {
		t.Errorf("Expected unsubscribed listener to get nothing, got %d", len(a.got))
	}
	if len(b.got) != 1 || b.got[0].Data.(GameEndedData).Kills != 3 {
		t.Errorf("Expected payload to reach remaining listener")
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	d.Subscribe(WeaponFired, ListenerFunc(func(Event) {
		d.Subscribe(WeaponFired, late)
	}))
	d.Emit(WeaponFired, nil)
	if len(late.got) != 0 {
		t.Fatalf("listener added mid-dispatch must not see the current event")
	}
	d.Emit(WeaponFired, nil)
	if len(late.got) != 1 {
		t.Fatalf("Expected late listener to see the next event, got %d", len(late.got))
	}
}

func TestOtherTypesNotDelivered(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(ReloadStarted, r)
	d.Emit(ReloadFinished, nil)
	if len(r.got) != 0 {
		t.Fatalf("Expected no delivery for other event types")
	}
}
