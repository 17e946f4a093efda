package http

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exphub/internal/domain"
)

type stubProjectsService struct {
	project      *domain.Project
	projectErr   error
	bundle       *domain.IssueBundle
	refreshErr   error
	refreshCalls int
}

func (s *stubProjectsService) ProjectByGitLink(ctx context.Context, gitLink string) (*domain.Project, error) {
	if s.projectErr != nil {
		return nil, s.projectErr
	}
	return s.project, nil
}

func (s *stubProjectsService) RefreshProjectIssues(ctx context.Context, projectID string) (*domain.IssueBundle, error) {
	s.refreshCalls++
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return s.bundle, nil
}

type stubAnalyticsService struct {
	analytics *domain.UserAnalytics
	err       error
}

func (s *stubAnalyticsService) UserAnalytics(ctx context.Context, userID string) (*domain.UserAnalytics, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.analytics, nil
}

type recordingBroadcaster struct {
	published map[string]int
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{published: make(map[string]int)}
}

func (b *recordingBroadcaster) PublishIssues(projectID string, issues *domain.IssueBundle) {
	b.published[projectID]++
}

func postWebhook(t *testing.T, handler *Handler, event, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/github-webhook", strings.NewReader(body))
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)
	return rec
}

func newWebhookHandler(svc *stubProjectsService, broadcaster *recordingBroadcaster) *Handler {
	noWS := func(w http.ResponseWriter, r *http.Request) {}
	return NewHandler(svc, &stubAnalyticsService{}, broadcaster, noWS, log.New(io.Discard, "", 0))
}

func TestWebhook_KnownProjectBroadcastsOnce(t *testing.T) {
	svc := &stubProjectsService{
		project: &domain.Project{ID: "p1", GitLink: "https://github.com/octocat/hello"},
		bundle: &domain.IssueBundle{
			Open: []domain.IssueView{{ID: 1, State: "open"}},
		},
	}
	broadcaster := newRecordingBroadcaster()
	handler := newWebhookHandler(svc, broadcaster)

	rec := postWebhook(t, handler, "issues",
		`{"repository": {"html_url": "https://github.com/octocat/hello"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.refreshCalls, "one cache-bypassing resync")
	assert.Equal(t, map[string]int{"p1": 1}, broadcaster.published,
		"exactly one broadcast, only to the affected project's room")
}

func TestWebhook_IrrelevantEventIsAcknowledged(t *testing.T) {
	svc := &stubProjectsService{}
	broadcaster := newRecordingBroadcaster()
	handler := newWebhookHandler(svc, broadcaster)

	rec := postWebhook(t, handler, "star", `{"anything": true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, svc.refreshCalls)
	assert.Empty(t, broadcaster.published)
}

func TestWebhook_MissingRepositoryIsBadRequest(t *testing.T) {
	handler := newWebhookHandler(&stubProjectsService{}, newRecordingBroadcaster())

	tests := []struct {
		name string
		body string
	}{
		{name: "no_repository_field", body: `{"action": "opened"}`},
		{name: "empty_html_url", body: `{"repository": {"html_url": ""}}`},
		{name: "not_json", body: `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postWebhook(t, handler, "issues", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestWebhook_UnknownProjectIsNotFound(t *testing.T) {
	svc := &stubProjectsService{projectErr: domain.ErrProjectNotFound}
	handler := newWebhookHandler(svc, newRecordingBroadcaster())

	rec := postWebhook(t, handler, "push",
		`{"repository": {"html_url": "https://github.com/octocat/unknown"}}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhook_ResyncFailureIsInternalError(t *testing.T) {
	svc := &stubProjectsService{
		project:    &domain.Project{ID: "p1"},
		refreshErr: domain.ErrUpstreamUnavailable,
	}
	broadcaster := newRecordingBroadcaster()
	handler := newWebhookHandler(svc, broadcaster)

	rec := postWebhook(t, handler, "pull_request",
		`{"repository": {"html_url": "https://github.com/octocat/hello"}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, broadcaster.published, "nothing is broadcast when the resync fails")

	// The ingester stays alive after an internal failure.
	svc.refreshErr = nil
	svc.bundle = &domain.IssueBundle{}
	rec = postWebhook(t, handler, "pull_request",
		`{"repository": {"html_url": "https://github.com/octocat/hello"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
}
