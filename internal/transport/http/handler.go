package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"exphub/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ProjectsService is the slice of the sync layer the webhook ingester needs.
type ProjectsService interface {
	ProjectByGitLink(ctx context.Context, gitLink string) (*domain.Project, error)
	RefreshProjectIssues(ctx context.Context, projectID string) (*domain.IssueBundle, error)
}

// AnalyticsService exposes accumulated per-user EXP totals.
type AnalyticsService interface {
	UserAnalytics(ctx context.Context, userID string) (*domain.UserAnalytics, error)
}

// Broadcaster pushes refreshed issue sets to a project's subscribers.
type Broadcaster interface {
	PublishIssues(projectID string, issues *domain.IssueBundle)
}

type Handler struct {
	projectsService  ProjectsService
	analyticsService AnalyticsService
	broadcaster      Broadcaster
	websocket        http.HandlerFunc
	logger           *log.Logger
}

func NewHandler(projects ProjectsService, analytics AnalyticsService, broadcaster Broadcaster, websocket http.HandlerFunc, logger *log.Logger) *Handler {
	return &Handler{
		projectsService:  projects,
		analyticsService: analytics,
		broadcaster:      broadcaster,
		websocket:        websocket,
		logger:           logger,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Post("/github-webhook", h.handleGithubWebhook)
	router.Get("/ws", h.websocket)
	router.Get("/users/{userID}/analytics", h.handleUserAnalytics)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return router
}

func (h *Handler) handleUserAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	analytics, err := h.analyticsService.UserAnalytics(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, body := mappingDomainErrors(err)
	writeJSON(w, status, body)
}
