// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		seed: seed,
		rng:  rand.New(source),
	}
}

// Seed возвращает фактически использованный сид (удобно для логов).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// IntInclusive возвращает равномерно распределённое целое в [ceil(min), floor(max)].
// Если после округления max < min, возвращается min.
func (s *PRNGService) IntInclusive(min, max float64) int {
	lo := int(math.Ceil(min))
	hi := int(math.Floor(max))
	if hi < lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
