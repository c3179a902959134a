package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"student-form/pkg/models"
	"student-form/pkg/validation"
)

// Session is the state owned by one browser: the draft being typed and
// the records accepted so far.
type Session struct {
	ID string

	mu       sync.Mutex
	draft    models.FormDraft
	store    *RecordStore
	lastSeen time.Time
}

func newSession(id string, limit int, now time.Time) *Session {
	return &Session{
		ID:       id,
		store:    NewRecordStore(limit),
		lastSeen: now,
	}
}

// Draft returns a copy of the current draft
func (s *Session) Draft() models.FormDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// UpdateField stores a keystroke and revalidates that field only
func (s *Session) UpdateField(f models.Field, value string) models.FormDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Values.Set(f, value)
	s.draft.Errors.Set(f, validation.ValidateField(f, value))
	return s.draft
}

// Fill replaces every value at once and revalidates all fields
func (s *Session) Fill(v models.FormValues) models.FormDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Values = v
	s.draft.Errors = validation.ValidateDraft(v)
	return s.draft
}

// Submit commits the draft into the session's store
func (s *Session) Submit() (models.Record, models.FormDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.store.Submit(&s.draft)
	return rec, s.draft, err
}

// FillAndSubmit replaces the draft with v, revalidates it and commits it
// under one lock, so no keystroke can land between validation and commit.
func (s *Session) FillAndSubmit(v models.FormValues) (models.Record, models.FormDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Values = v
	s.draft.Errors = validation.ValidateDraft(v)
	rec, err := s.store.Submit(&s.draft)
	return rec, s.draft, err
}

func (s *Session) Records() []models.Record {
	return s.store.List()
}

func (s *Session) Search(query string) []models.Record {
	return s.store.Search(query)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// SessionManager keeps sessions in memory and expires idle ones
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	timeout  time.Duration
	limit    int
	max      int
	now      func() time.Time
}

// NewSessionManager creates a registry. recordLimit caps records per
// session and maxSessions caps live sessions; 0 disables either cap.
func NewSessionManager(timeout time.Duration, recordLimit, maxSessions int) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		limit:    recordLimit,
		max:      maxSessions,
		now:      time.Now,
	}
}

// Get returns the session for id, creating a fresh one when id is empty,
// unknown or expired. The returned session's ID may differ from id.
func (m *SessionManager) Get(id string) *Session {
	now := m.now()

	if id != "" {
		m.mu.RLock()
		s, ok := m.sessions[id]
		m.mu.RUnlock()
		if ok && (m.timeout <= 0 || s.idleSince(now) < m.timeout) {
			s.touch(now)
			return s
		}
	}

	s := newSession(uuid.NewString(), m.limit, now)
	m.mu.Lock()
	if id != "" {
		delete(m.sessions, id)
	}
	if m.max > 0 && len(m.sessions) >= m.max {
		m.evictOldestLocked(now)
	}
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// evictOldestLocked drops the least recently seen session. m.mu must be held.
func (m *SessionManager) evictOldestLocked(now time.Time) {
	var (
		oldestID string
		oldest   time.Duration = -1
	)
	for id, s := range m.sessions {
		if idle := s.idleSince(now); idle > oldest {
			oldestID, oldest = id, idle
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
	}
}

// Len returns the number of live sessions
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the timeout and returns how
// many were removed.
func (m *SessionManager) Sweep() int {
	if m.timeout <= 0 {
		return 0
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(now) >= m.timeout {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick of interval until ctx is done
func (m *SessionManager) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
