package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"exphub/internal/domain"
)

// processedEvents are the upstream event kinds that trigger a resync. Any
// other kind is acknowledged without action.
var processedEvents = map[string]struct{}{
	"issues":       {},
	"push":         {},
	"pull_request": {},
}

type webhookPayload struct {
	Repository *struct {
		HTMLURL string `json:"html_url"`
	} `json:"repository"`
}

func (h *Handler) handleGithubWebhook(w http.ResponseWriter, r *http.Request) {
	eventType := r.Header.Get("X-GitHub-Event")
	if _, ok := processedEvents[eventType]; !ok {
		writeJSON(w, http.StatusOK, map[string]string{"status": "webhook received"})
		return
	}

	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err))
		return
	}
	if payload.Repository == nil || payload.Repository.HTMLURL == "" {
		writeError(w, fmt.Errorf("%w: missing repository", domain.ErrInvalidPayload))
		return
	}

	ctx := r.Context()

	project, err := h.projectsService.ProjectByGitLink(ctx, payload.Repository.HTMLURL)
	if err != nil {
		writeError(w, err)
		return
	}

	// Cache-bypassing resync: the event tells us the cached lists are stale.
	bundle, err := h.projectsService.RefreshProjectIssues(ctx, project.ID)
	if err != nil {
		h.logger.Printf("webhook resync of project %s: %v", project.ID, err)
		writeError(w, err)
		return
	}

	h.broadcaster.PublishIssues(project.ID, bundle)

	writeJSON(w, http.StatusOK, map[string]string{"status": "webhook processed"})
}
