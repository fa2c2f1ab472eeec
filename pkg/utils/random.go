package utils

import "math/rand"

// NewRNG создаёт детерминированный генератор. Нулевое зерно заменяется на 1,
// чтобы "не задано" не совпадало с настоящим зерном 0 в разных местах.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// IntInRange возвращает число из [min, max] включительно
func IntInRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
