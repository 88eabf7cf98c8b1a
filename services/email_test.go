package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *ResendClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewResendClient("re_test_key", "site@example.com", "owner@example.com")
	client.endpoint = server.URL
	return client
}

func TestSendContactNotification(t *testing.T) {
	var got ResendEmailRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ResendEmailResponse{ID: "em_123"})
	})

	err := client.SendContactNotification(context.Background(), ContactEmail{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: "Hiring",
		Message: "Hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, "site@example.com", got.From)
	assert.Equal(t, []string{"owner@example.com"}, got.To)
	assert.Equal(t, "jordan@example.com", got.ReplyTo, "operator replies go straight to the sender")
	assert.Contains(t, got.Subject, "Jordan")
	assert.Contains(t, got.Text, "Hello there")
}

func TestSendAutoReply(t *testing.T) {
	var got ResendEmailRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ResendEmailResponse{ID: "em_456"})
	})

	err := client.SendAutoReply(context.Background(), ContactEmail{
		Name:  "Jordan",
		Email: "jordan@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"jordan@example.com"}, got.To)
	assert.Empty(t, got.ReplyTo)
	assert.Contains(t, got.Text, "No subject", "missing subject gets a placeholder")
}

func TestSendSurfacesAPIErrors(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ResendErrorResponse{Message: "invalid to address"})
	})

	err := client.SendAutoReply(context.Background(), ContactEmail{Name: "x", Email: "bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid to address")
	assert.Contains(t, err.Error(), "422")
}

func TestSendWithoutAPIKey(t *testing.T) {
	client := NewResendClient("", "site@example.com", "owner@example.com")

	err := client.SendContactNotification(context.Background(), ContactEmail{Name: "x", Email: "y@z.dev"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
