// Package session implements viewing sessions. A session is the period during
// which one token's page is watched: it owns the per-holder statistics cache,
// the price observer for that token, and the fan-out that keeps profit/loss
// figures synchronized with the observed market price. Sessions hold no
// identity beyond their lifetime; ending one discards all cached statistics.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/astrabot/odin-insight/internal/apperrors"
	"github.com/astrabot/odin-insight/internal/model"
	"github.com/astrabot/odin-insight/internal/odin"
	"github.com/astrabot/odin-insight/internal/price"
	"github.com/astrabot/odin-insight/internal/stats"
	"github.com/astrabot/odin-insight/internal/ws"
)

// warmConcurrency bounds parallel activity fetches during a batch warm.
const warmConcurrency = 4

// entry is one cached per-account computation. Absent entries are cached too,
// so accounts with no activity for the token are not refetched within the
// session.
type entry struct {
	stats  model.HolderStats
	absent bool
}

// Session caches holder statistics for one token while its page is viewed.
type Session struct {
	ID        string    `json:"id"`
	TokenID   string    `json:"tokenId"`
	CreatedAt time.Time `json:"createdAt"`

	client   odin.Client
	observer *price.Observer
	hub      *ws.Hub

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry
	closed  bool
}

func newSession(tokenID string, client odin.Client, observer *price.Observer, hub *ws.Hub) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		TokenID:   tokenID,
		CreatedAt: time.Now().UTC(),
		client:    client,
		observer:  observer,
		hub:       hub,
		entries:   make(map[string]entry),
	}

	if observer != nil {
		observer.Subscribe(s.applyPrice)
	}

	return s
}

// HolderStats returns the statistics for one account, computing them on first
// access. Within a session, at most one underlying activity fetch is issued
// per account: cache hits return immediately and concurrent first accesses
// are collapsed by singleflight.
//
// A fetch failure degrades to "no data": the account is cached as absent and
// apperrors.ErrStatsAbsent is returned, never a user-visible error.
func (s *Session) HolderStats(ctx context.Context, accountID string) (model.HolderStats, error) {
	if accountID == "" {
		return model.HolderStats{}, apperrors.ErrEmptyAccountID
	}

	if e, ok := s.lookup(accountID); ok {
		return s.resolve(e)
	}

	result, err, _ := s.group.Do(accountID, func() (interface{}, error) {
		// Re-check under singleflight; a concurrent caller may have
		// populated the cache while this call waited.
		if e, ok := s.lookup(accountID); ok {
			return e, nil
		}
		return s.load(ctx, accountID), nil
	})
	if err != nil {
		return model.HolderStats{}, err
	}

	return s.resolve(result.(entry))
}

// load fetches the account's activity and computes its statistics. Network or
// decode failures substitute an empty activity sequence.
func (s *Session) load(ctx context.Context, accountID string) entry {
	activities, err := s.client.FetchAllActivities(ctx, accountID)
	if err != nil {
		log.Printf("activity fetch failed for account %s: %v", accountID, err)
		activities = nil
	}

	currentPrice, _ := s.CurrentPrice()

	computed, ok := stats.Compute(activities, s.TokenID, currentPrice)
	e := entry{absent: !ok}
	if ok {
		computed.AccountID = accountID
		e.stats = computed
	}

	s.store(accountID, e)
	return e
}

// WarmHolders loads statistics for many accounts with bounded concurrency.
// Accounts without activity are skipped in the result; the per-account
// degrade semantics match HolderStats.
func (s *Session) WarmHolders(ctx context.Context, accountIDs []string) ([]model.HolderStats, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)

	results := make([]*model.HolderStats, len(accountIDs))
	for i, accountID := range accountIDs {
		g.Go(func() error {
			holderStats, err := s.HolderStats(ctx, accountID)
			if err != nil {
				// Absent and empty-ID accounts are skipped, not fatal.
				return nil
			}
			results[i] = &holderStats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	loaded := make([]model.HolderStats, 0, len(accountIDs))
	for _, r := range results {
		if r != nil {
			loaded = append(loaded, *r)
		}
	}

	return loaded, nil
}

// CurrentPrice returns the observed market price for the session's token.
// The second return value is false while no price has been located.
func (s *Session) CurrentPrice() (float64, bool) {
	if s.observer == nil {
		return 0, false
	}
	return s.observer.Price()
}

// ObserverState reports the price observer's state for diagnostics.
func (s *Session) ObserverState() string {
	if s.observer == nil {
		return price.StateIdle
	}
	return s.observer.State()
}

// CachedStats returns the statistics currently cached for the session,
// excluding absent entries.
func (s *Session) CachedStats() []model.HolderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cached := make([]model.HolderStats, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.absent {
			cached = append(cached, e.stats)
		}
	}
	return cached
}

// applyPrice re-derives the volatile fields of every cached account for the
// new price, without refetching or re-aggregating activity, and broadcasts
// the updated figures.
func (s *Session) applyPrice(newPrice float64) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	updated := make([]model.HolderStats, 0, len(s.entries))
	for accountID, e := range s.entries {
		if e.absent {
			continue
		}
		e.stats.ProfitLoss, e.stats.ROI = stats.Rederive(e.stats, newPrice)
		s.entries[accountID] = e
		updated = append(updated, e.stats)
	}
	s.mu.Unlock()

	if s.hub == nil {
		return
	}

	s.hub.Broadcast(ws.PriceUpdateMessage{Type: "priceUpdate", TokenID: s.TokenID, Price: newPrice})
	if len(updated) > 0 {
		s.hub.Broadcast(ws.StatsUpdateMessage{Type: "statsUpdate", TokenID: s.TokenID, Data: updated})
	}
}

// close marks the session dead. Late in-flight loads still write into the
// discarded cache, which no live session observes.
func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.Stop()
	}
}

func (s *Session) lookup(accountID string) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[accountID]
	return e, ok
}

func (s *Session) store(accountID string, e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[accountID] = e
}

func (s *Session) resolve(e entry) (model.HolderStats, error) {
	if e.absent {
		return model.HolderStats{}, apperrors.ErrStatsAbsent
	}
	return e.stats, nil
}
