package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjulagihan/portfolio-backend/models"
	"github.com/sanjulagihan/portfolio-backend/services"
)

type fakeMessageStore struct {
	added  []*models.Message
	addErr error
}

func (s *fakeMessageStore) Add(message *models.Message) error {
	if s.addErr != nil {
		return s.addErr
	}
	message.ID = uuid.New()
	s.added = append(s.added, message)
	return nil
}

type fakeMailer struct {
	notifyErr error
	replyErr  error

	notified []services.ContactEmail
	replied  []services.ContactEmail
}

func (m *fakeMailer) SendContactNotification(_ context.Context, data services.ContactEmail) error {
	if m.notifyErr != nil {
		return m.notifyErr
	}
	m.notified = append(m.notified, data)
	return nil
}

func (m *fakeMailer) SendAutoReply(_ context.Context, data services.ContactEmail) error {
	if m.replyErr != nil {
		return m.replyErr
	}
	m.replied = append(m.replied, data)
	return nil
}

func postContact(t *testing.T, handler contactHandler, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.submitContact()(rec, req)
	return rec
}

func TestSubmitContact(t *testing.T) {
	store := &fakeMessageStore{}
	mailer := &fakeMailer{}
	handler := newContactHandler(store, mailer)

	rec := postContact(t, handler, ContactRequest{
		Name:    "  Jordan Smith ",
		Email:   "Jordan@Example.COM",
		Subject: "Hiring",
		Message: "Love the site.",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success       bool                  `json:"success"`
		ID            uuid.UUID             `json:"id"`
		Notifications []NotificationOutcome `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	require.Len(t, store.added, 1)
	stored := store.added[0]
	assert.Equal(t, "Jordan Smith", stored.Name)
	assert.Equal(t, "jordan@example.com", stored.Email)
	require.NotNil(t, stored.Subject)
	assert.Equal(t, "Hiring", *stored.Subject)
	assert.False(t, stored.Read)
	assert.False(t, stored.Replied)

	require.Len(t, resp.Notifications, 2)
	for _, outcome := range resp.Notifications {
		assert.True(t, outcome.Sent)
		assert.Empty(t, outcome.Error)
	}
	require.Len(t, mailer.notified, 1)
	require.Len(t, mailer.replied, 1)
	assert.Equal(t, "jordan@example.com", mailer.replied[0].Email)
}

func TestSubmitContactInvalidEmail(t *testing.T) {
	store := &fakeMessageStore{}
	handler := newContactHandler(store, &fakeMailer{})

	rec := postContact(t, handler, ContactRequest{
		Name:    "Jordan",
		Email:   "not-an-email",
		Message: "hello",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.added, "invalid submissions must not be stored")
	assert.Contains(t, rec.Body.String(), "invalid email format")
}

func TestSubmitContactMissingFields(t *testing.T) {
	store := &fakeMessageStore{}
	handler := newContactHandler(store, &fakeMailer{})

	rec := postContact(t, handler, ContactRequest{Email: "jordan@example.com"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.added)
}

func TestSubmitContactProviderDown(t *testing.T) {
	store := &fakeMessageStore{}
	mailer := &fakeMailer{
		notifyErr: errors.New("resend: 503"),
		replyErr:  errors.New("resend: 503"),
	}
	handler := newContactHandler(store, mailer)

	rec := postContact(t, handler, ContactRequest{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Message: "hello",
	})

	// Email is advisory; the stored message is the success criterion.
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.added, 1)

	var resp struct {
		Notifications []NotificationOutcome `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 2)
	for _, outcome := range resp.Notifications {
		assert.False(t, outcome.Sent)
		assert.Contains(t, outcome.Error, "503")
	}
}

func TestSubmitContactStoreFailure(t *testing.T) {
	store := &fakeMessageStore{addErr: errors.New("connection refused")}
	mailer := &fakeMailer{}
	handler := newContactHandler(store, mailer)

	rec := postContact(t, handler, ContactRequest{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Message: "hello",
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, mailer.notified, "no emails when the message was not stored")
	assert.Empty(t, mailer.replied)
}

func TestSubmitContactMalformedBody(t *testing.T) {
	handler := newContactHandler(&fakeMessageStore{}, &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.submitContact()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
