package realtime

import (
	"encoding/json"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exphub/internal/domain"
)

func newTestClient() *Client {
	return &Client{
		send:   make(chan []byte, sendBufferSize),
		logger: log.New(io.Discard, "", 0),
	}
}

func TestHub_PublishReachesOnlySubscribers(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))

	subscriber := newTestClient()
	other := newTestClient()

	hub.Subscribe(subscriber, "p1")
	hub.Subscribe(other, "p2")

	bundle := &domain.IssueBundle{
		Open: []domain.IssueView{{ID: 1, Title: "first", State: "open"}},
	}
	hub.PublishIssues("p1", bundle)

	require.Len(t, subscriber.send, 1, "exactly one delivery to the project's room")
	assert.Empty(t, other.send, "no deliveries to other rooms")

	var msg pushMessage
	require.NoError(t, json.Unmarshal(<-subscriber.send, &msg))
	assert.Equal(t, EventUpdateProjectIssues, msg.Event)
	assert.Equal(t, "p1", msg.Data.ProjectID)
	require.NotNil(t, msg.Data.Issues)
	assert.Len(t, msg.Data.Issues.Open, 1)
}

func TestHub_SubscribeIsIdempotent(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))

	client := newTestClient()
	hub.Subscribe(client, "p1")
	hub.Subscribe(client, "p1")

	hub.PublishIssues("p1", &domain.IssueBundle{})

	assert.Len(t, client.send, 1, "double subscription must not double deliveries")
}

func TestHub_UnsubscribeRemovesFromAllRooms(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))

	client := newTestClient()
	hub.Subscribe(client, "p1")
	hub.Subscribe(client, "p2")

	hub.Unsubscribe(client)

	hub.PublishIssues("p1", &domain.IssueBundle{})
	hub.PublishIssues("p2", &domain.IssueBundle{})

	assert.Empty(t, client.send)
}

func TestHub_SlowSubscriberIsSkipped(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))

	slow := &Client{
		send:   make(chan []byte), // unbuffered and never drained
		logger: log.New(io.Discard, "", 0),
	}
	healthy := newTestClient()

	hub.Subscribe(slow, "p1")
	hub.Subscribe(healthy, "p1")

	// Must not block on the slow client.
	hub.PublishIssues("p1", &domain.IssueBundle{})

	assert.Len(t, healthy.send, 1)
}
