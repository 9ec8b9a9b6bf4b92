package ids

import (
	"sync"
	"testing"
	"time"
)

func TestNewRunIDSequentialOrdering(t *testing.T) {
	const total = 100
	ids := make([]string, total)
	for i := range total {
		ids[i] = NewRunID().String()
	}

	for i := range total {
		if len(ids[i]) != 26 {
			t.Fatalf("expected run id length 26, got %d", len(ids[i]))
		}
		if _, err := ParseRunID(ids[i]); err != nil {
			t.Fatalf("expected valid run id, got %v", err)
		}
	}

	for i := 1; i < total; i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("expected run ids to be strictly increasing, %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestNewRunIDConcurrentUniqueness(t *testing.T) {
	const goroutines = 10
	const perGoroutine = 20

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[RunID]struct{})
	)

	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range perGoroutine {
				id := NewRunID()
				mu.Lock()
				if _, ok := seen[id]; ok {
					t.Errorf("duplicate run id generated: %s", id)
				} else {
					seen[id] = struct{}{}
				}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if expected := goroutines * perGoroutine; len(seen) != expected {
		t.Fatalf("expected %d unique run ids, got %d", expected, len(seen))
	}
}

func TestRunIDTime(t *testing.T) {
	at := time.Date(2024, 5, 30, 15, 58, 48, 0, time.UTC)
	id := newRunIDAt(at)
	if got := id.Time(); !got.Equal(at) {
		t.Fatalf("Time() = %v, want %v", got, at)
	}
}

func TestParseRunIDRejectsGarbage(t *testing.T) {
	if _, err := ParseRunID("not-a-run-id"); err == nil {
		t.Fatal("expected error")
	}
}
