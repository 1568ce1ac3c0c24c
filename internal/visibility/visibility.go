// Package visibility gates which app sections are shown to devotees. The
// flags are edited from the admin panel and take effect everywhere without
// a redeploy.
package visibility

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

// ConfigKey is the config table row holding the persisted flags.
const ConfigKey = "admin:section-visibility"

// pubsubChannel carries cross-process change notifications.
const pubsubChannel = "matha:visibility"

// Section keys. Every key defaults to visible.
const (
	HomeAnnouncements = "home.announcements"
	HomeNews          = "home.news"
	HomeTimings       = "home.timings"
	ExploreQuiz       = "explore.quiz"
	ExplorePanchanga  = "explore.panchanga"
	ServicesSeva      = "services.seva"
	ServicesRoom      = "services.room"
)

// Keys lists every section key in display order.
var Keys = []string{
	HomeAnnouncements,
	HomeNews,
	HomeTimings,
	ExploreQuiz,
	ExplorePanchanga,
	ServicesSeva,
	ServicesRoom,
}

// Snapshot is the full visibility map at one point in time.
type Snapshot map[string]bool

// Defaults returns the all-visible snapshot.
func Defaults() Snapshot {
	s := make(Snapshot, len(Keys))
	for _, k := range Keys {
		s[k] = true
	}
	return s
}

// Visible reports whether the given section is shown. Unknown keys are
// visible so a stale client key never blanks a section.
func (s Snapshot) Visible(key string) bool {
	v, ok := s[key]
	return !ok || v
}

func (s Snapshot) clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Store persists the visibility flags and broadcasts changes to
// subscribers. With a Redis client attached, changes made by other
// processes are observed through pub/sub.
type Store struct {
	q   *store.Queries
	rdb *redis.Client

	mu     sync.RWMutex
	cached Snapshot
	subs   map[int]chan Snapshot
	nextID int
}

// New creates a visibility store. rdb may be nil for single-process
// deployments.
func New(q *store.Queries, rdb *redis.Client) *Store {
	return &Store{
		q:    q,
		rdb:  rdb,
		subs: make(map[int]chan Snapshot),
	}
}

// Get returns the current visibility map: the persisted flags merged
// key-by-key over the defaults. A missing row, unknown persisted keys, or
// corrupt JSON never fail a read; the defaults cover the gaps.
func (s *Store) Get(ctx context.Context) Snapshot {
	s.mu.RLock()
	if s.cached != nil {
		snap := s.cached.clone()
		s.mu.RUnlock()
		return snap
	}
	s.mu.RUnlock()

	snap := s.load(ctx)

	s.mu.Lock()
	s.cached = snap.clone()
	s.mu.Unlock()
	return snap
}

func (s *Store) load(ctx context.Context) Snapshot {
	snap := Defaults()

	row, err := s.q.GetConfig(ctx, ConfigKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("visibility read failed, using defaults", "error", err)
		}
		return snap
	}

	var persisted map[string]bool
	if err := json.Unmarshal([]byte(row.Value), &persisted); err != nil {
		slog.Warn("visibility config is corrupt, using defaults", "error", err)
		return snap
	}
	for k, v := range persisted {
		if _, known := snap[k]; known {
			snap[k] = v
		}
	}
	return snap
}

// Set persists the given flags and notifies every subscriber. Unknown keys
// are dropped; keys absent from the input keep their defaults.
func (s *Store) Set(ctx context.Context, flags Snapshot) (Snapshot, error) {
	snap := Defaults()
	for k, v := range flags {
		if _, known := snap[k]; known {
			snap[k] = v
		}
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	if err := s.q.SetConfig(ctx, ConfigKey, string(raw)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = snap.clone()
	s.mu.Unlock()

	s.broadcast(snap)

	if s.rdb != nil {
		if err := s.rdb.Publish(ctx, pubsubChannel, "changed").Err(); err != nil {
			slog.Warn("visibility publish failed", "error", err)
		}
	}
	return snap, nil
}

// Subscribe registers for change notifications. The channel has a buffer of
// one; a slow subscriber skips intermediate snapshots and always receives
// the latest. The returned func releases the subscription.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}

// broadcast delivers snap to every subscriber without blocking. A full
// buffer is drained first so the latest snapshot wins.
func (s *Store) broadcast(snap Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap.clone():
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap.clone():
			default:
			}
		}
	}
}

// Listen blocks on the Redis pub/sub channel and re-reads the flags when
// another process changes them. It returns when ctx is cancelled or the
// store has no Redis client.
func (s *Store) Listen(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	sub := s.rdb.Subscribe(ctx, pubsubChannel)
	defer func() { _ = sub.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			_ = msg

			s.mu.Lock()
			s.cached = nil
			s.mu.Unlock()

			s.broadcast(s.Get(ctx))
		}
	}
}
