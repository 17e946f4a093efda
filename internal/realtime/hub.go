// Package realtime fans updated issue sets out to websocket clients. Each
// project has a room; delivery is best-effort with no queued retry, so a
// disconnected client simply misses updates until its next explicit fetch.
package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"exphub/internal/domain"
)

// EventUpdateProjectIssues is the server->client push event.
const EventUpdateProjectIssues = "updateProjectIssues"

type issuesUpdate struct {
	ProjectID string              `json:"projectId"`
	Issues    *domain.IssueBundle `json:"issues"`
}

type pushMessage struct {
	Event string       `json:"event"`
	Data  issuesUpdate `json:"data"`
}

// Hub tracks which client belongs to which project rooms. It is created at
// process start and torn down at shutdown; components receive it as a
// dependency rather than reaching for a global.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		logger: logger,
	}
}

// Subscribe adds the client to the project's room. Subscribing twice is a
// no-op.
func (h *Hub) Subscribe(c *Client, projectID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[projectID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[projectID] = room
	}
	room[c] = struct{}{}
}

// Unsubscribe removes the client from every room it joined.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for projectID, room := range h.rooms {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, projectID)
		}
	}
}

// PublishIssues delivers the refreshed issue bundle to every subscriber of
// the project's room. Clients whose send buffer is full are skipped.
func (h *Hub) PublishIssues(projectID string, issues *domain.IssueBundle) {
	payload, err := json.Marshal(pushMessage{
		Event: EventUpdateProjectIssues,
		Data: issuesUpdate{
			ProjectID: projectID,
			Issues:    issues,
		},
	})
	if err != nil {
		h.logger.Printf("marshal issues update for project %s: %v", projectID, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[projectID] {
		select {
		case c.send <- payload:
		default:
			h.logger.Printf("dropping issues update for a slow subscriber of project %s", projectID)
		}
	}
}
