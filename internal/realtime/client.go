package realtime

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"exphub/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	sendBufferSize = 16
	requestTimeout = 30 * time.Second
)

// SyncService is the slice of the sync layer the realtime channel exposes
// to clients.
type SyncService interface {
	SyncProject(ctx context.Context, userID, owner, name string) (*domain.ProjectSnapshot, error)
	SyncAllProjects(ctx context.Context, userID string) ([]domain.ProjectOverview, error)
	SyncIssues(ctx context.Context, userID, projectID, state string, force bool) ([]domain.IssueView, error)
	SyncFirstComment(ctx context.Context, userID, owner, repo string, issueNumber int) (*domain.Comment, error)
	HandleMergedPullRequest(ctx context.Context, event domain.MergeEvent) error
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Browsers connect from a separately hosted frontend.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type request struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type response struct {
	Event    string `json:"event"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Projects any    `json:"projects,omitempty"`
	Project  any    `json:"project,omitempty"`
	Issues   any    `json:"issues,omitempty"`
	Comments any    `json:"comments,omitempty"`
}

// Client is one websocket connection. Requests on a connection are handled
// one at a time; many connections run concurrently.
type Client struct {
	hub    *Hub
	svc    SyncService
	conn   *websocket.Conn
	send   chan []byte
	logger *log.Logger

	// userID is set by registerUser and only touched from the read loop.
	userID string
}

// ServeWS upgrades an HTTP request to a websocket connection and runs its
// pumps.
func ServeWS(hub *Hub, svc SyncService, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Printf("websocket upgrade: %v", err)
			return
		}

		client := &Client{
			hub:    hub,
			svc:    svc,
			conn:   conn,
			send:   make(chan []byte, sendBufferSize),
			logger: logger,
		}

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unsubscribe(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Printf("websocket read: %v", err)
			}
			return
		}
		c.dispatch(raw)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) dispatch(raw []byte) {
	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		c.respond(response{Event: "error", Error: "invalid message"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch req.Event {
	case "registerUser":
		c.handleRegisterUser(req)
	case "joinProject":
		c.handleJoinProject(req)
	case "getAllProjects":
		c.handleGetAllProjects(ctx, req)
	case "fetchRepo":
		c.handleFetchRepo(ctx, req)
	case "getProjectIssues":
		c.handleGetProjectIssues(ctx, req)
	case "getIssueComments":
		c.handleGetIssueComments(ctx, req)
	case "pullRequestMerged":
		c.handlePullRequestMerged(ctx, req)
	default:
		c.respond(response{Event: req.Event, Error: "unknown event"})
	}
}

func (c *Client) handleRegisterUser(req request) {
	var data struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(req.Data, &data); err != nil || data.UserID == "" {
		c.respond(response{Event: req.Event, Error: "userId is required"})
		return
	}

	c.userID = data.UserID
	c.respond(response{Event: req.Event, Success: true})
}

func (c *Client) handleJoinProject(req request) {
	var data struct {
		ProjectID string `json:"projectId"`
	}
	if err := json.Unmarshal(req.Data, &data); err != nil || data.ProjectID == "" {
		c.respond(response{Event: req.Event, Error: "projectId is required"})
		return
	}

	c.hub.Subscribe(c, data.ProjectID)
	c.respond(response{Event: req.Event, Success: true})
}

func (c *Client) handleGetAllProjects(ctx context.Context, req request) {
	projects, err := c.svc.SyncAllProjects(ctx, c.requestUserID(req))
	if err != nil {
		c.respond(response{Event: req.Event, Error: "Failed to fetch projects"})
		return
	}
	c.respond(response{Event: req.Event, Success: true, Projects: projects})
}

func (c *Client) handleFetchRepo(ctx context.Context, req request) {
	var data struct {
		UserID   string `json:"userId"`
		Owner    string `json:"owner"`
		RepoName string `json:"repoName"`
	}
	if err := json.Unmarshal(req.Data, &data); err != nil || data.Owner == "" || data.RepoName == "" {
		c.respond(response{Event: req.Event, Error: "Owner and repoName are required"})
		return
	}

	project, err := c.svc.SyncProject(ctx, c.userIDOr(data.UserID), data.Owner, data.RepoName)
	if err != nil {
		c.respond(response{Event: req.Event, Error: "Failed to fetch GitHub repo"})
		return
	}
	c.respond(response{Event: req.Event, Success: true, Project: project})
}

func (c *Client) handleGetProjectIssues(ctx context.Context, req request) {
	var data struct {
		UserID    string `json:"userId"`
		ProjectID string `json:"projectId"`
		State     string `json:"state"`
	}
	if err := json.Unmarshal(req.Data, &data); err != nil || data.ProjectID == "" {
		c.respond(response{Event: req.Event, Error: "projectId is required"})
		return
	}
	if data.State == "" {
		data.State = "all"
	}

	issues, err := c.svc.SyncIssues(ctx, c.userIDOr(data.UserID), data.ProjectID, data.State, false)
	if err != nil {
		c.respond(response{Event: req.Event, Error: "Failed to fetch issues"})
		return
	}
	c.respond(response{Event: req.Event, Success: true, Issues: issues})
}

func (c *Client) handleGetIssueComments(ctx context.Context, req request) {
	var data struct {
		UserID   string `json:"userId"`
		Owner    string `json:"owner"`
		RepoName string `json:"repoName"`
		IssueID  int    `json:"issueId"`
	}
	if err := json.Unmarshal(req.Data, &data); err != nil || data.Owner == "" || data.RepoName == "" || data.IssueID == 0 {
		c.respond(response{Event: req.Event, Error: "owner, repoName and issueId are required"})
		return
	}

	first, err := c.svc.SyncFirstComment(ctx, c.userIDOr(data.UserID), data.Owner, data.RepoName, data.IssueID)
	if err != nil {
		c.respond(response{Event: req.Event, Error: "Failed to fetch comments"})
		return
	}

	comments := []domain.Comment{}
	if first != nil {
		comments = append(comments, *first)
	}
	c.respond(response{Event: req.Event, Success: true, Comments: comments})
}

func (c *Client) handlePullRequestMerged(ctx context.Context, req request) {
	var data struct {
		RepoData domain.MergeEvent `json:"repoData"`
	}
	if err := json.Unmarshal(req.Data, &data); err != nil {
		return // fire-and-forget: nothing to answer
	}

	if err := c.svc.HandleMergedPullRequest(ctx, data.RepoData); err != nil {
		c.logger.Printf("handle merged pull request: %v", err)
	}
}

func (c *Client) requestUserID(req request) string {
	var data struct {
		UserID string `json:"userId"`
	}
	if len(req.Data) > 0 {
		_ = json.Unmarshal(req.Data, &data)
	}
	return c.userIDOr(data.UserID)
}

func (c *Client) userIDOr(userID string) string {
	if userID != "" {
		return userID
	}
	return c.userID
}

func (c *Client) respond(resp response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		c.logger.Printf("marshal response: %v", err)
		return
	}

	select {
	case c.send <- payload:
	default:
		c.logger.Printf("dropping response %q: send buffer full", resp.Event)
	}
}
