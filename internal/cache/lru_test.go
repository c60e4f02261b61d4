// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets TTL tests advance time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newClockedLRU[K comparable, V any](capacity int, ttl time.Duration) (*LRU[K, V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRU[K, V](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestLRU_BasicOperations(t *testing.T) {
	t.Parallel()

	cache := NewLRU[string, int](3, time.Minute)
	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, found := cache.Get(key)
		if !found {
			t.Errorf("expected to find key %q", key)
		}
		if got != want {
			t.Errorf("Get(%q) = %d, want %d", key, got, want)
		}
	}

	if cache.Len() != 3 {
		t.Errorf("expected len 3, got %d", cache.Len())
	}
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	cache := NewLRU[string, int](3, time.Minute)
	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	// Touch 'a' so 'b' becomes least recently used
	cache.Get("a")
	cache.Add("d", 4)

	if _, found := cache.Get("b"); found {
		t.Error("expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := cache.Get(key); !found {
			t.Errorf("expected %q to be present", key)
		}
	}
	if got := cache.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestLRU_TTLExpiration(t *testing.T) {
	t.Parallel()

	cache, clock := newClockedLRU[int64, string](10, time.Hour)
	cache.Add(19995, "https://image.tmdb.org/t/p/w500/a.jpg")

	if _, found := cache.Get(19995); !found {
		t.Fatal("expected entry to be found immediately")
	}

	clock.Advance(time.Hour + time.Second)

	if _, found := cache.Get(19995); found {
		t.Error("expected entry to be expired")
	}
	if cache.Len() != 0 {
		t.Errorf("expired entry should be removed on Get, len = %d", cache.Len())
	}
}

func TestLRU_AddWithTTL(t *testing.T) {
	t.Parallel()

	cache, clock := newClockedLRU[string, int](10, time.Hour)
	cache.AddWithTTL("short", 1, time.Minute)
	cache.Add("long", 2)

	clock.Advance(2 * time.Minute)

	if _, found := cache.Get("short"); found {
		t.Error("expected short-lived entry to expire")
	}
	if _, found := cache.Get("long"); !found {
		t.Error("expected default-TTL entry to survive")
	}
}

func TestLRU_UpdateExisting(t *testing.T) {
	t.Parallel()

	cache := NewLRU[string, string](2, time.Minute)
	cache.Add("a", "first")
	cache.Add("b", "second")
	cache.Add("a", "updated")

	// 'a' was refreshed, so adding 'c' evicts 'b'
	cache.Add("c", "third")

	if got, _ := cache.Get("a"); got != "updated" {
		t.Errorf("Get(a) = %q, want updated", got)
	}
	if _, found := cache.Get("b"); found {
		t.Error("expected 'b' to be evicted")
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	t.Parallel()

	cache, clock := newClockedLRU[string, int](10, time.Minute)
	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	clock.Advance(2 * time.Minute)
	cache.Add("d", 4)

	if removed := cache.CleanupExpired(); removed != 3 {
		t.Errorf("expected 3 expired entries removed, got %d", removed)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 entry remaining, got %d", cache.Len())
	}
}

func TestLRU_Stats(t *testing.T) {
	t.Parallel()

	cache := NewLRU[string, int](10, time.Minute)
	cache.Add("a", 1)
	cache.Get("a")
	cache.Get("a")
	cache.Get("missing")

	stats := cache.Stats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.Size != 1 || stats.Capacity != 10 {
		t.Errorf("Stats() = %+v", stats)
	}
	if rate := stats.HitRate(); rate < 66.6 || rate > 66.7 {
		t.Errorf("HitRate() = %v, want ~66.67", rate)
	}
	if (Stats{}).HitRate() != 0 {
		t.Error("HitRate() of empty stats should be 0")
	}
}

func TestLRU_Defaults(t *testing.T) {
	t.Parallel()

	cache := NewLRU[string, int](0, 0)
	if cache.capacity != 10000 {
		t.Errorf("default capacity = %d, want 10000", cache.capacity)
	}
	if cache.ttl != 5*time.Minute {
		t.Errorf("default ttl = %v, want 5m", cache.ttl)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	cache := NewLRU[string, int](100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (id+j)%150)
				cache.Add(key, j)
				cache.Get(key)
				if j%10 == 0 {
					cache.CleanupExpired()
				}
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() > 100 {
		t.Errorf("cache exceeded capacity: %d", cache.Len())
	}
}
