package services

import (
	"errors"

	"go.uber.org/zap"

	"student-form/pkg/models"
	"student-form/pkg/utils"
)

// StudentService defines the operations behind the student form
type StudentService interface {
	Session(id string) *Session
	UpdateField(s *Session, field models.Field, value string) models.FormDraft
	Submit(s *Session, values *models.FormValues) (models.Record, models.FormDraft, error)
	Search(s *Session, query string) []models.Record
}

type studentServiceImpl struct {
	sessions *SessionManager
	logger   *zap.Logger
}

// NewStudentService creates a new student form service
func NewStudentService(sessions *SessionManager, logger *zap.Logger) StudentService {
	return &studentServiceImpl{
		sessions: sessions,
		logger:   logger,
	}
}

func (s *studentServiceImpl) Session(id string) *Session {
	return s.sessions.Get(id)
}

func (s *studentServiceImpl) UpdateField(sess *Session, field models.Field, value string) models.FormDraft {
	return sess.UpdateField(field, value)
}

// Submit commits the session's draft. When values is non-nil the draft is
// first replaced by it and every field is revalidated.
func (s *studentServiceImpl) Submit(sess *Session, values *models.FormValues) (models.Record, models.FormDraft, error) {
	var (
		rec   models.Record
		draft models.FormDraft
		err   error
	)
	if values != nil {
		rec, draft, err = sess.FillAndSubmit(*values)
	} else {
		rec, draft, err = sess.Submit()
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDraft):
			s.logger.Debug("Rejected submission with invalid fields", zap.String("session", sess.ID))
		case errors.Is(err, ErrDuplicateRecord):
			s.logger.Info("Rejected duplicate record",
				zap.String("session", sess.ID),
				zap.String("id_hash", utils.HashString(draft.Values.ID)))
		default:
			s.logger.Warn("Submission failed", zap.String("session", sess.ID), zap.Error(err))
		}
		return rec, draft, err
	}

	s.logger.Info("Stored student record",
		zap.String("session", sess.ID),
		zap.String("id_hash", utils.HashString(rec.ID)))
	return rec, draft, nil
}

func (s *studentServiceImpl) Search(sess *Session, query string) []models.Record {
	return sess.Search(query)
}
