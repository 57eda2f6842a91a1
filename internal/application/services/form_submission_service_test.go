package services

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
)

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:  true,
		LogDirectory:  t.TempDir(),
		JSONFormat:    true,
		DefaultLevel:  slog.LevelError,
		ChannelLevels: make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)
	return logger
}

func newSubmissionFixture(t *testing.T) (*FormSubmissionService, *fakeEmailService, string) {
	t.Helper()
	repo := newFakeFormRepo()
	form, err := NewFormService(repo).Create(testTenant, contactFormDraft("contact"))
	require.NoError(t, err)

	emailSvc := &fakeEmailService{}
	return NewFormSubmissionService(repo, emailSvc, newTestLogger(t)), emailSvc, form.ID
}

func TestSubmitSendsNotification(t *testing.T) {
	svc, emailSvc, formID := newSubmissionFixture(t)

	submission, err := svc.Submit(testTenant, formID, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"topic":   "sales",
		"message": "I have a question about pricing.",
	})
	require.NoError(t, err)
	assert.Equal(t, formID, submission.FormID)
	assert.False(t, submission.SubmittedAt.IsZero())

	require.Len(t, emailSvc.sent, 1)
	sent := emailSvc.sent[0]
	assert.Equal(t, "owner@example.com", sent.To)
	assert.Equal(t, "Contact", sent.FormTitle)
	require.Len(t, sent.Values, 4)
	assert.Equal(t, "Name", sent.Values[0].Label, "values follow the form's field order")
	assert.Equal(t, "Ada", sent.Values[0].Value)
}

func TestSubmitOmitsBlankOptionalValues(t *testing.T) {
	svc, emailSvc, formID := newSubmissionFixture(t)

	_, err := svc.Submit(testTenant, formID, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "Hello",
	})
	require.NoError(t, err)

	require.Len(t, emailSvc.sent, 1)
	require.Len(t, emailSvc.sent[0].Values, 3, "unanswered optional fields are left out of the email")
}

func TestSubmitMissingRequiredField(t *testing.T) {
	svc, emailSvc, formID := newSubmissionFixture(t)

	_, err := svc.Submit(testTenant, formID, map[string]string{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	fields := apperrors.FieldsOf(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "message", fields[0].Field)
	assert.Empty(t, emailSvc.sent)
}

func TestSubmitRejectsUnknownField(t *testing.T) {
	svc, _, formID := newSubmissionFixture(t)

	_, err := svc.Submit(testTenant, formID, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "Hello",
		"extra":   "payload",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	fields := apperrors.FieldsOf(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "extra", fields[0].Field)
}

func TestSubmitValidatesFieldTypes(t *testing.T) {
	svc, _, formID := newSubmissionFixture(t)

	_, err := svc.Submit(testTenant, formID, map[string]string{
		"name":    "Ada",
		"email":   "not-an-address",
		"topic":   "gossip",
		"message": "Hello",
	})
	require.Error(t, err)
	fields := apperrors.FieldsOf(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "topic", fields[1].Field)
}

func TestSubmitUnknownForm(t *testing.T) {
	svc, _, _ := newSubmissionFixture(t)

	_, err := svc.Submit(testTenant, "missing", map[string]string{})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSubmitInactiveForm(t *testing.T) {
	repo := newFakeFormRepo()
	draft := contactFormDraft("contact")
	draft.IsActive = false
	form, err := NewFormService(repo).Create(testTenant, draft)
	require.NoError(t, err)

	svc := NewFormSubmissionService(repo, &fakeEmailService{}, newTestLogger(t))
	_, err = svc.Submit(testTenant, form.ID, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "Hello",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err), "inactive forms are invisible to the public endpoint")
}
