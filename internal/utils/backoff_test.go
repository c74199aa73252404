package utils

import (
	"errors"
	"testing"
	"time"
)

func TestBackoffStopsOnSuccess(t *testing.T) {
	calls := 0
	err := NewBackoff(time.Millisecond, 0, 5).Do(func(i int) error {
		calls++
		if i == 1 {
			return nil
		}
		return errors.New("again")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestBackoffReturnsLastError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := NewBackoff(time.Millisecond, 0, 2).Do(func(int) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected last error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}
