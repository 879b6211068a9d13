package storage

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretdrop/secretdrop/interfaces"
)

func newTestStore(t *testing.T, clk clock.Clock) *MemoryStore {
	t.Helper()

	s := NewMemoryStore(Config{
		TTL:           5 * time.Minute,
		SweepInterval: 30 * time.Second,
		Clock:         clk,
		Log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(s.Close)
	return s
}

func TestPutTakeSingleRead(t *testing.T) {
	s := newTestStore(t, clock.New())

	stored, err := s.Put("launch codes")
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	payload, ok := s.Take(stored.ID)
	require.True(t, ok)
	assert.Equal(t, "launch codes", payload)

	// Second take must miss: the entry is gone.
	payload, ok = s.Take(stored.ID)
	assert.False(t, ok)
	assert.Empty(t, payload)
	assert.Equal(t, 0, s.Len())
}

func TestTakeNotFoundUniformity(t *testing.T) {
	s := newTestStore(t, clock.New())

	stored, err := s.Put("consumed")
	require.NoError(t, err)
	_, ok := s.Take(stored.ID)
	require.True(t, ok)

	// A consumed id and a never-issued id produce identical results.
	consumedPayload, consumedOK := s.Take(stored.ID)
	missingPayload, missingOK := s.Take(interfaces.SecretID("nonexistent-id"))

	assert.Equal(t, consumedOK, missingOK)
	assert.Equal(t, consumedPayload, missingPayload)
	assert.False(t, missingOK)
}

func TestTakeAfterTTLMisses(t *testing.T) {
	mock := clock.NewMock()
	s := newTestStore(t, mock)

	stored, err := s.Put("stale")
	require.NoError(t, err)

	mock.Add(5 * time.Minute)

	payload, ok := s.Take(stored.ID)
	assert.False(t, ok)
	assert.Empty(t, payload)
	assert.Equal(t, 0, s.Len())
}

func TestNoPrematureExpiry(t *testing.T) {
	mock := clock.NewMock()
	s := newTestStore(t, mock)

	stored, err := s.Put("still fresh")
	require.NoError(t, err)

	// One second short of the deadline the secret must still be readable.
	mock.Add(5*time.Minute - time.Second)

	payload, ok := s.Take(stored.ID)
	require.True(t, ok)
	assert.Equal(t, "still fresh", payload)
}

func TestSweepEvictsExpired(t *testing.T) {
	mock := clock.NewMock()
	s := newTestStore(t, mock)

	for i := 0; i < 3; i++ {
		_, err := s.Put(fmt.Sprintf("secret-%d", i))
		require.NoError(t, err)
	}
	require.Equal(t, 3, s.Len())

	// Give the sweep goroutine a moment to arm its ticker on the mock clock
	// before advancing time past the deadline.
	time.Sleep(10 * time.Millisecond)
	mock.Add(5*time.Minute + 30*time.Second)

	require.Eventually(t, func() bool {
		return s.Len() == 0
	}, 2*time.Second, 10*time.Millisecond, "sweep did not evict expired entries")
}

func TestSweepKeepsLiveEntries(t *testing.T) {
	mock := clock.NewMock()
	s := newTestStore(t, mock)

	_, err := s.Put("long lived enough")
	require.NoError(t, err)

	// Several sweep ticks pass but the TTL has not elapsed.
	time.Sleep(10 * time.Millisecond)
	mock.Add(2 * time.Minute)

	assert.Equal(t, 1, s.Len())
}

func TestIDUniqueness(t *testing.T) {
	s := newTestStore(t, clock.New())

	const n = 100
	seen := make(map[interfaces.SecretID]struct{}, n)
	for i := 0; i < n; i++ {
		stored, err := s.Put("payload")
		require.NoError(t, err)
		_, dup := seen[stored.ID]
		require.False(t, dup, "duplicate id %s", stored.ID)
		seen[stored.ID] = struct{}{}
	}
	assert.Equal(t, n, s.Len())
}

func TestConcurrentTakeExactlyOnce(t *testing.T) {
	s := newTestStore(t, clock.New())

	stored, err := s.Put("contended")
	require.NoError(t, err)

	const callers = 50
	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		successes = make(chan string, callers)
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if payload, ok := s.Take(stored.ID); ok {
				successes <- payload
			}
		}()
	}

	close(start)
	wg.Wait()
	close(successes)

	var got []string
	for payload := range successes {
		got = append(got, payload)
	}
	require.Len(t, got, 1, "exactly one caller must observe the payload")
	assert.Equal(t, "contended", got[0])
}

func TestCloseIsIdempotent(t *testing.T) {
	s := NewMemoryStore(Config{Log: slog.New(slog.NewTextHandler(io.Discard, nil))})
	s.Close()
	s.Close()
}
