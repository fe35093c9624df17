package utils

import "testing"

type weighted struct {
	name string
	w    int
}

func TestChooseWeightedDistribution(t *testing.T) {
	p := NewPRNGService(42)
	items := []weighted{{"a", 6}, {"b", 4}, {"c", 0}}
	counts := make([]int, len(items))
	for i := 0; i < 10000; i++ {
		idx := ChooseWeighted(p, items, func(w weighted) int { return w.w })
		counts[idx]++
	}
	if counts[2] != 0 {
		t.Errorf("zero-weight item must never be picked, got %d", counts[2])
	}
	if counts[0] < 5500 || counts[0] > 6500 {
		t.Errorf("Expected roughly 60%% for a, got %d", counts[0])
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	p := NewPRNGService(1)
	if idx := ChooseWeighted(p, []weighted{}, func(w weighted) int { return w.w }); idx != -1 {
		t.Errorf("Expected -1 for empty input, got %d", idx)
	}
}

func TestSeededServicesAgree(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 20; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestBetweenInclusive(t *testing.T) {
	p := NewPRNGService(3)
	seenLo, seenHi := false, false
	for i := 0; i < 1000; i++ {
		v := p.Between(1, 2)
		if v < 1 || v > 2 {
			t.Fatalf("value %d outside [1,2]", v)
		}
		seenLo = seenLo || v == 1
		seenHi = seenHi || v == 2
	}
	if !seenLo || !seenHi {
		t.Errorf("Expected both bounds to occur")
	}
}

func TestChanceBounds(t *testing.T) {
	p := NewPRNGService(5)
	if !p.Chance(1) || p.Chance(0) {
		t.Fatal("Chance(1) must be true and Chance(0) false")
	}
}

func TestApproachSnaps(t *testing.T) {
	v := 0.0
	for i := 0; i < 200; i++ {
		v = Approach(v, 1.8, 0.08)
	}
	if v != 1.8 {
		t.Fatalf("Expected to settle on 1.8, got %v", v)
	}
}
