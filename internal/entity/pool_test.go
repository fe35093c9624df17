package entity

import (
	"testing"

	"go-star-shooter/internal/types"
)

type dummy struct{ V int }

func TestPoolAcquireRelease(t *testing.T) {
	p := NewPool[dummy](2)
	a, da, ok := p.Acquire()
	if !ok {
		t.Fatal("Expected first acquire to succeed")
	}
	da.V = 7
	b, _, ok := p.Acquire()
	if !ok {
		t.Fatal("Expected second acquire to succeed")
	}
	if _, _, ok := p.Acquire(); ok {
		t.Fatal("Expected pool of 2 to be exhausted")
	}
	if p.Active() != 2 {
		t.Errorf("Expected 2 active, got %d", p.Active())
	}
	if !p.Release(a) {
		t.Fatal("Expected release of live handle to succeed")
	}
	if p.Release(a) {
		t.Error("Expected double release to be ignored")
	}
	if _, ok := p.Get(a); ok {
		t.Error("Expected released handle to be stale")
	}
	c, dc, ok := p.Acquire()
	if !ok {
		t.Fatal("Expected acquire after release to succeed")
	}
	if c.Index != a.Index || c.Gen == a.Gen {
		t.Errorf("Expected slot reuse with new generation, got %v after %v", c, a)
	}
	if dc.V != 0 {
		t.Errorf("Expected reused slot to be zeroed, got %d", dc.V)
	}
	if _, ok := p.Get(b); !ok {
		t.Error("Expected untouched handle to stay valid")
	}
}

func TestPoolEachVisitsOnlyActive(t *testing.T) {
	p := NewPool[dummy](4)
	ids := make([]types.EntityID, 0, 4)
	for i := 0; i < 4; i++ {
		id, d, _ := p.Acquire()
		d.V = i
		ids = append(ids, id)
	}
	p.Release(ids[1])
	p.Release(ids[3])
	sum := 0
	visited := 0
	p.Each(func(id types.EntityID, d *dummy) {
		visited++
		sum += d.V
	})
	if visited != 2 || sum != 2 {
		t.Errorf("Expected to visit slots 0 and 2, visited %d sum %d", visited, sum)
	}
}

func TestPoolReleaseDuringEach(t *testing.T) {
	p := NewPool[dummy](3)
	for i := 0; i < 3; i++ {
		p.Acquire()
	}
	p.Each(func(id types.EntityID, _ *dummy) {
		p.Release(id)
	})
	if p.Active() != 0 {
		t.Errorf("Expected empty pool, got %d", p.Active())
	}
}

func TestPoolClearKeepsGenerations(t *testing.T) {
	p := NewPool[dummy](1)
	a, _, _ := p.Acquire()
	p.Clear()
	if p.Alive(a) {
		t.Fatal("Expected handle to be stale after Clear")
	}
	b, _, ok := p.Acquire()
	if !ok || b.Gen == a.Gen {
		t.Fatalf("Expected fresh generation after Clear, got %v", b)
	}
}

func TestZeroIDNeverResolves(t *testing.T) {
	p := NewPool[dummy](1)
	p.Acquire()
	if _, ok := p.Get(types.EntityID{}); ok {
		t.Fatal("zero id must not resolve")
	}
}
