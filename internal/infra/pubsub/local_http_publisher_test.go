package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beerhaus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishCommunityEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &entity.CommunityEvent{
		RequestID:      "req-1",
		Type:           entity.EventAnnouncementPosted,
		AnnouncementID: "a1",
		Title:          "Tap takeover",
		Author:         "Ada Lovelace",
		OccurredAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	err := publisher.PublishCommunityEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "announcement.posted", received.Message.Attributes["event_type"])
	assert.Equal(t, "a1", received.Message.Attributes["announcement_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	payload, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded entity.CommunityEvent
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, event.Title, decoded.Title)
	assert.Equal(t, event.Author, decoded.Author)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishCommunityEvent(context.Background(), &entity.CommunityEvent{Type: entity.EventCommentAdded})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
