// SPDX-License-Identifier: MIT

// Package editor hosts interactive spline editing sessions over HTTP and
// websockets. Each session owns one pointset.Set; sessions expire after a
// period of inactivity.
package editor

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/lvspline/pointset"
)

// ErrSessionNotFound indicates an unknown or expired session ID.
var ErrSessionNotFound = errors.New("editor: session not found")

// Store keeps sessions in a TTL cache. Every successful Get slides the
// expiry forward.
type Store struct {
	c   *cache.Cache
	ttl time.Duration
	log *slog.Logger
}

// NewStore returns a Store expiring sessions idle for ttl, sweeping every
// cleanup interval.
func NewStore(ttl, cleanup time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{c: cache.New(ttl, cleanup), ttl: ttl, log: logger}
	s.c.OnEvicted(func(id string, v interface{}) {
		if sess, ok := v.(*Session); ok {
			s.log.Debug("session evicted", "session", id, "points", sess.Set.Len())
		}
	})

	return s
}

// Create registers a new session with an empty point set.
func (s *Store) Create(opts ...pointset.Option) *Session {
	sess := newSession(uuid.NewString(), pointset.New(opts...))
	s.c.Set(sess.ID, sess, s.ttl)
	s.log.Info("session created", "session", sess.ID)

	return sess
}

// Get returns the session and refreshes its expiry.
func (s *Store) Get(id string) (*Session, error) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess := v.(*Session)
	s.c.Set(id, sess, s.ttl)

	return sess, nil
}

// Delete removes the session; it reports whether it existed.
func (s *Store) Delete(id string) bool {
	if _, ok := s.c.Get(id); !ok {
		return false
	}
	s.c.Delete(id)

	return true
}

// Len returns the number of live sessions, expired-but-unswept included.
func (s *Store) Len() int { return s.c.ItemCount() }

// Flush drops every session.
func (s *Store) Flush() { s.c.Flush() }
