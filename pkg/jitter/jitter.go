// Package jitter добавляет случайный разброс к задержкам повторов,
// чтобы клиенты не приходили за ресурсом одновременно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter — разброс до +50% от задержки.
const DefaultJitter = 0.5

// Duration возвращает d с джиттером в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	return DurationWith(d, factor, rand.Float64)
}

// DurationWith то же, что Duration, но с внешним источником случайности (в тестах).
func DurationWith(d time.Duration, factor float64, float func() float64) time.Duration {
	if d <= 0 || factor <= 0 {
		return d
	}
	return d + time.Duration(float()*factor*float64(d))
}

// ExponentialBackoff: base*2^attempt, не больше maxDelay, плюс джиттер.
// attempt считается с нуля.
func ExponentialBackoff(base, maxDelay time.Duration, attempt int, factor float64) time.Duration {
	return Duration(Exponential(base, maxDelay, attempt), factor)
}

// Exponential возвращает задержку без джиттера.
func Exponential(base, maxDelay time.Duration, attempt int) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff >= maxDelay {
			return maxDelay
		}
	}
	return min(backoff, maxDelay)
}
