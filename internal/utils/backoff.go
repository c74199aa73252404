package utils

import (
	"math/rand"
	"time"
)

// Backoff retries fn with exponential delays plus jitter. No sleep after
// the final attempt.
type Backoff struct {
	base       time.Duration
	jitter     time.Duration
	maxRetries int
}

func NewBackoff(base, jitter time.Duration, maxRetries int) Backoff {
	return Backoff{base: base, jitter: jitter, maxRetries: maxRetries}
}

func (b Backoff) Do(fn func(i int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil {
			return nil
		}
		if i == b.maxRetries {
			break
		}
		t := time.Duration(1<<i) * b.base
		if b.jitter > 0 {
			t += time.Duration(rand.Int63n(int64(b.jitter)))
		}
		time.Sleep(t)
	}
	return err
}
