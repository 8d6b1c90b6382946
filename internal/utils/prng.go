// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-tower-defense/internal/defs"
)

// PRNGService — обертка над генератором случайных чисел,
// чтобы весь рандом сессии шёл от одного сида.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// ChooseWeighted picks an enemy type from the spawn table with probability
// proportional to its weight. ok is false for an empty table.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) (defs.EnemyType, bool) {
	if len(entries) == 0 {
		return 0, false
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight == 0 {
		return entries[0].Enemy, true
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Enemy, true
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Enemy, true
}
