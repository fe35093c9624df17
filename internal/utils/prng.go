// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Between возвращает целое из [lo, hi]. Перепутанные границы допустимы.
func (s *PRNGService) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// FloatBetween returns a float in [lo, hi).
func (s *PRNGService) FloatBetween(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// DurationBetween returns a whole-millisecond duration in [loMs, hiMs].
func (s *PRNGService) DurationBetween(loMs, hiMs int) time.Duration {
	return time.Duration(s.Between(loMs, hiMs)) * time.Millisecond
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	if p >= 1 {
		return true
	}
	if p <= 0 {
		return false
	}
	return s.rng.Float64() < p
}

// ChooseWeighted выполняет взвешенный случайный выбор.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
// Возвращает -1, если выбирать не из чего.
func ChooseWeighted[T any](s *PRNGService, items []T, weight func(T) int) int {
	if len(items) == 0 {
		return -1
	}
	total := 0
	for _, it := range items {
		if w := weight(it); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	r := s.Intn(total)
	upto := 0
	for i, it := range items {
		w := weight(it)
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(items) - 1
}
