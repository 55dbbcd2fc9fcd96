package session

import (
	"sync"
	"time"

	"servicedesk/internal/domain/order"
	"servicedesk/internal/pkg/clock"

	"github.com/google/uuid"
)

// CartStore keeps per-user cart lines in memory. Carts are session state:
// they survive requests but not restarts, expire after the configured idle
// TTL, and are cleared on checkout and logout.
type CartStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	clock clock.Clock
	carts map[uuid.UUID]*cartEntry
}

type cartEntry struct {
	lines     []order.CartLine
	touchedAt time.Time
}

func NewCartStore(ttl time.Duration, clk clock.Clock) *CartStore {
	return &CartStore{
		ttl:   ttl,
		clock: clk,
		carts: make(map[uuid.UUID]*cartEntry),
	}
}

// Add appends a line. Duplicate service ids get their own line.
func (s *CartStore) Add(userID uuid.UUID, line order.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	entry := s.carts[userID]
	if entry == nil || s.expired(entry, now) {
		entry = &cartEntry{}
		s.carts[userID] = entry
	}
	entry.lines = append(entry.lines, line)
	entry.touchedAt = now
}

// Lines returns a copy of the user's cart, refreshing its TTL.
func (s *CartStore) Lines(userID uuid.UUID) []order.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	entry := s.carts[userID]
	if entry == nil {
		return nil
	}
	if s.expired(entry, now) {
		delete(s.carts, userID)
		return nil
	}

	entry.touchedAt = now
	lines := make([]order.CartLine, len(entry.lines))
	copy(lines, entry.lines)
	return lines
}

func (s *CartStore) Clear(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *CartStore) expired(entry *cartEntry, now time.Time) bool {
	return now.Sub(entry.touchedAt) > s.ttl
}
