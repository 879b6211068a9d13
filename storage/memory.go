package storage

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/secretdrop/secretdrop/interfaces"
	"github.com/secretdrop/secretdrop/metrics"
)

const (
	// DefaultTTL is how long an unread secret survives.
	DefaultTTL = 5 * time.Minute

	// DefaultSweepInterval bounds how late after its deadline an unread
	// entry may linger in memory. Take never returns an entry past its
	// deadline regardless of sweep timing.
	DefaultSweepInterval = 30 * time.Second
)

type entry struct {
	payload   string
	createdAt time.Time
	expiresAt time.Time
}

// Config configures a MemoryStore.
type Config struct {
	// TTL is the fixed lifetime of an unread entry. Defaults to DefaultTTL.
	TTL time.Duration

	// SweepInterval is how often the expiry sweep runs. Defaults to
	// DefaultSweepInterval.
	SweepInterval time.Duration

	// Clock is the time source. Defaults to the wall clock; tests inject a
	// mock to exercise TTL behavior deterministically.
	Clock clock.Clock

	// Log is the structured logger.
	Log *slog.Logger
}

// MemoryStore is the in-memory implementation of interfaces.SecretStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[interfaces.SecretID]entry

	ttl           time.Duration
	sweepInterval time.Duration
	clock         clock.Clock
	log           *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates a store and starts its expiry sweep goroutine.
// Callers own the store lifecycle and must Close it on shutdown.
func NewMemoryStore(cfg Config) *MemoryStore {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}

	s := &MemoryStore{
		entries:       make(map[interfaces.SecretID]entry),
		ttl:           cfg.TTL,
		sweepInterval: cfg.SweepInterval,
		clock:         cfg.Clock,
		log:           cfg.Log,
		done:          make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Put stores a secret under a fresh random id and returns the receipt. The
// payload is assumed valid (non-empty after trimming); the HTTP boundary
// enforces that before calling in.
func (s *MemoryStore) Put(payload string) (interfaces.StoredSecret, error) {
	raw, err := uuid.NewRandom()
	if err != nil {
		return interfaces.StoredSecret{}, fmt.Errorf("failed to generate secret id: %w", err)
	}
	id := interfaces.SecretID(raw.String())

	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	s.mu.Lock()
	s.entries[id] = entry{
		payload:   payload,
		createdAt: now,
		expiresAt: expiresAt,
	}
	live := len(s.entries)
	s.mu.Unlock()

	metrics.SecretsCreated.Inc()
	metrics.SecretsLive.Inc()
	s.log.Debug("Stored secret", "live", live, "expiresIn", s.ttl)

	return interfaces.StoredSecret{ID: id, ExpiresAt: expiresAt}, nil
}

// Take removes the entry for id and returns its payload. The check-and-remove
// runs under the store lock, so at most one caller ever observes a given
// payload even under concurrent Take calls or a racing expiry sweep. An entry
// past its deadline is evicted here instead of being returned, so a late
// sweep never causes a late read.
func (s *MemoryStore) Take(id interfaces.SecretID) (string, bool) {
	now := s.clock.Now()

	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return "", false
	}
	delete(s.entries, id)
	s.mu.Unlock()

	metrics.SecretsLive.Dec()

	if !e.expiresAt.After(now) {
		metrics.SecretsExpired.Inc()
		return "", false
	}

	metrics.SecretsClaimed.Inc()
	return e.payload, true
}

// Len reports the number of live entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the expiry sweep. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *MemoryStore) sweepLoop() {
	ticker := s.clock.Ticker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

// sweep evicts every entry whose deadline has passed.
func (s *MemoryStore) sweep() {
	now := s.clock.Now()

	s.mu.Lock()
	expired := 0
	for id, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, id)
			expired++
		}
	}
	remaining := len(s.entries)
	s.mu.Unlock()

	if expired > 0 {
		metrics.SecretsExpired.Add(float64(expired))
		metrics.SecretsLive.Sub(float64(expired))
		s.log.Debug("Swept expired secrets", "expired", expired, "remaining", remaining)
	}
}
