// Package session keeps each client's wizard and food log in memory.
// Nothing here outlives the process.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"mealmentor/internal/nutrition"
)

var ErrNotFound = errors.New("session not found")

// Session is one client's in-progress state. Use Do to touch it.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	closed  bool
	wizard  *nutrition.Wizard
	tracker *nutrition.Tracker
}

// Do runs fn with the session locked. A deleted session returns
// ErrNotFound without running fn.
func (s *Session) Do(fn func(w *nutrition.Wizard, t *nutrition.Tracker) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrNotFound
	}
	return fn(s.wizard, s.tracker)
}

// Options configures how new sessions are built.
type Options struct {
	Catalog    nutrition.Catalog
	InitialLog []nutrition.LogEntry
	Clock      nutrition.Clock
	// OnComplete receives the profile when a session's wizard finishes.
	OnComplete func(sessionID string, p nutrition.Profile) error
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
}

func NewStore(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Create starts a session with a fresh wizard and a tracker seeded with
// the initial log.
func (s *Store) Create() *Session {
	id := uuid.NewString()
	sess := &Session{
		ID:        id,
		CreatedAt: s.opts.Clock(),
	}

	var onComplete nutrition.CompletionFunc
	if s.opts.OnComplete != nil {
		onComplete = func(p nutrition.Profile) error {
			return s.opts.OnComplete(id, p)
		}
	}
	sess.wizard = nutrition.NewWizard(onComplete)
	sess.tracker = nutrition.NewTracker(
		s.opts.Catalog,
		nutrition.NewDailyLog(s.opts.Clock, s.opts.InitialLog...),
	)

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete discards the session and everything entered in it. It waits for
// a running Do to finish; callers still holding the session get
// ErrNotFound afterwards.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	delete(s.sessions, id)
	s.mu.Unlock()

	sess.mu.Lock()
	sess.closed = true
	sess.mu.Unlock()
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
