package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"student-form/pkg/models"
	"student-form/pkg/utils"
)

func newObservedService() (StudentService, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	svc := NewStudentService(NewSessionManager(0, 0, 0), zap.New(core))
	return svc, logs
}

func TestStudentServiceSubmit(t *testing.T) {
	svc, logs := newObservedService()
	sess := svc.Session("")

	values := models.FormValues{ID: "SV01", FullName: "Nguyen Van A", Phone: "0912345678", Email: "a@example.com"}
	rec, draft, err := svc.Submit(sess, &values)
	require.NoError(t, err)
	assert.Equal(t, values.Record(), rec)
	assert.Equal(t, models.FormDraft{}, draft)

	entries := logs.FilterMessage("Stored student record").All()
	require.Len(t, entries, 1)
	assert.Equal(t, utils.HashString("SV01"), entries[0].ContextMap()["id_hash"])

	again := values
	again.ID = "sv01"
	again.Email = "z@example.com"
	_, draft, err = svc.Submit(sess, &again)
	assert.ErrorIs(t, err, ErrDuplicateRecord)
	assert.Equal(t, "sv01", draft.Values.ID)
	assert.Len(t, svc.Search(sess, ""), 1)
	assert.Equal(t, 1, logs.FilterMessage("Rejected duplicate record").Len())
}

func TestStudentServiceSubmitCurrentDraft(t *testing.T) {
	svc, _ := newObservedService()
	sess := svc.Session("")

	svc.UpdateField(sess, models.FieldID, "SV01")
	svc.UpdateField(sess, models.FieldFullName, "nguyen")
	_, draft, err := svc.Submit(sess, nil)
	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.NotEmpty(t, draft.Errors.FullName)

	svc.UpdateField(sess, models.FieldFullName, "Nguyen Van A")
	svc.UpdateField(sess, models.FieldEmail, "a@example.com")
	_, _, err = svc.Submit(sess, nil)
	require.NoError(t, err)

	assert.Len(t, svc.Search(sess, "nguyen"), 1)
	assert.Empty(t, svc.Search(sess, "99"))
}
