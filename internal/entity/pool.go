// internal/entity/pool.go
package entity

import "go-star-shooter/internal/types"

// Pool — арена фиксированной ёмкости. Слоты переиспользуются, и каждое
// переиспользование увеличивает поколение слота: старые хэндлы протухают.
type Pool[T any] struct {
	items  []T
	gens   []uint32
	active []bool
	free   []uint32
	count  int
}

// NewPool создаёт пул на capacity слотов.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		items:  make([]T, capacity),
		gens:   make([]uint32, capacity),
		active: make([]bool, capacity),
		free:   make([]uint32, 0, capacity),
	}
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, uint32(i))
	}
	return p
}

// Acquire занимает свободный слот, обнуляет его и возвращает хэндл.
// ok равен false, если пул исчерпан.
func (p *Pool[T]) Acquire() (types.EntityID, *T, bool) {
	if len(p.free) == 0 {
		return types.EntityID{}, nil, false
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.gens[idx]++
	if p.gens[idx] == 0 {
		p.gens[idx] = 1
	}
	p.active[idx] = true
	var zero T
	p.items[idx] = zero
	p.count++
	return types.EntityID{Index: idx, Gen: p.gens[idx]}, &p.items[idx], true
}

// Release возвращает слот в пул. Протухшие и неактивные хэндлы игнорируются.
func (p *Pool[T]) Release(id types.EntityID) bool {
	if !p.valid(id) {
		return false
	}
	p.active[id.Index] = false
	p.free = append(p.free, id.Index)
	p.count--
	return true
}

// Get возвращает живой элемент по id.
func (p *Pool[T]) Get(id types.EntityID) (*T, bool) {
	if !p.valid(id) {
		return nil, false
	}
	return &p.items[id.Index], true
}

// Alive reports whether id still refers to an active slot.
func (p *Pool[T]) Alive(id types.EntityID) bool {
	return p.valid(id)
}

// Each обходит активные слоты по порядку индексов. Внутри fn можно
// освобождать текущий хэндл.
func (p *Pool[T]) Each(fn func(id types.EntityID, item *T)) {
	for i := range p.items {
		if !p.active[i] {
			continue
		}
		fn(types.EntityID{Index: uint32(i), Gen: p.gens[i]}, &p.items[i])
	}
}

// IDs returns a snapshot of the active handles.
func (p *Pool[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, p.count)
	p.Each(func(id types.EntityID, _ *T) {
		ids = append(ids, id)
	})
	return ids
}

func (p *Pool[T]) Active() int { return p.count }
func (p *Pool[T]) Cap() int    { return len(p.items) }

// Clear освобождает все слоты. Поколения сохраняются, старые хэндлы остаются протухшими.
func (p *Pool[T]) Clear() {
	p.free = p.free[:0]
	for i := len(p.items) - 1; i >= 0; i-- {
		p.active[i] = false
		p.free = append(p.free, uint32(i))
	}
	p.count = 0
}

func (p *Pool[T]) valid(id types.EntityID) bool {
	if id.Gen == 0 || int(id.Index) >= len(p.items) {
		return false
	}
	return p.active[id.Index] && p.gens[id.Index] == id.Gen
}
