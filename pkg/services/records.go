package services

import (
	"errors"
	"strings"
	"sync"

	"student-form/pkg/models"
)

var (
	ErrInvalidDraft    = errors.New("form has invalid fields")
	ErrDuplicateRecord = errors.New("duplicate student id or email")
	ErrStoreFull       = errors.New("record limit reached")
)

// User-facing alert texts
const (
	MsgDuplicateRecord = "Mã sinh viên hoặc Email đã tồn tại trong danh sách."
	MsgStoreFull       = "Danh sách sinh viên đã đầy."
)

// AlertMessage returns the text shown to the user for a submit error, or
// "" when the error has no alert.
func AlertMessage(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateRecord):
		return MsgDuplicateRecord
	case errors.Is(err, ErrStoreFull):
		return MsgStoreFull
	}
	return ""
}

// IsDuplicate reports whether candidate shares an ID or email with any
// existing record, ignoring case.
func IsDuplicate(candidate models.Record, existing []models.Record) bool {
	for _, r := range existing {
		if strings.EqualFold(r.ID, candidate.ID) || strings.EqualFold(r.Email, candidate.Email) {
			return true
		}
	}
	return false
}

// Filter returns the records matching query, in their original order.
// ID, full name and email match case-insensitively; phone matches as typed.
func Filter(query string, records []models.Record) []models.Record {
	q := strings.ToLower(query)
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.ID), q) ||
			strings.Contains(strings.ToLower(r.FullName), q) ||
			strings.Contains(r.Phone, query) ||
			strings.Contains(strings.ToLower(r.Email), q) {
			out = append(out, r)
		}
	}
	return out
}

// RecordStore is an append-only list of accepted records
type RecordStore struct {
	mu      sync.RWMutex
	records []models.Record
	limit   int
}

// NewRecordStore creates an empty store. A limit of 0 means unbounded.
func NewRecordStore(limit int) *RecordStore {
	return &RecordStore{limit: limit}
}

// Submit commits the draft if it carries no field errors and does not
// collide with a stored record. On success the draft is reset.
func (s *RecordStore) Submit(draft *models.FormDraft) (models.Record, error) {
	if draft.Errors.Any() {
		return models.Record{}, ErrInvalidDraft
	}

	rec := draft.Values.Record()

	s.mu.Lock()
	defer s.mu.Unlock()

	if IsDuplicate(rec, s.records) {
		return models.Record{}, ErrDuplicateRecord
	}
	if s.limit > 0 && len(s.records) >= s.limit {
		return models.Record{}, ErrStoreFull
	}

	s.records = append(s.records, rec)
	draft.Reset()
	return rec, nil
}

// List returns a copy of every record in insertion order
func (s *RecordStore) List() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Search applies Filter to the current records
func (s *RecordStore) Search(query string) []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(query, s.records)
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
