package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"exphub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getAnalytics(t *testing.T, handler *Handler, userID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID+"/analytics", nil)
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)
	return rec
}

func TestUserAnalytics_ReturnsTotals(t *testing.T) {
	analytics := &stubAnalyticsService{
		analytics: &domain.UserAnalytics{
			UserID:    "u1",
			ExpPoints: 340,
			League:    "bronze",
			Rank:      "unranked",
		},
	}
	noWS := func(w http.ResponseWriter, r *http.Request) {}
	handler := NewHandler(&stubProjectsService{}, analytics, newRecordingBroadcaster(), noWS, log.New(io.Discard, "", 0))

	rec := getAnalytics(t, handler, "u1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.UserAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 340, got.ExpPoints)
	assert.Equal(t, "bronze", got.League)
}

func TestUserAnalytics_UnknownUser(t *testing.T) {
	analytics := &stubAnalyticsService{err: domain.ErrNotFound}
	noWS := func(w http.ResponseWriter, r *http.Request) {}
	handler := NewHandler(&stubProjectsService{}, analytics, newRecordingBroadcaster(), noWS, log.New(io.Discard, "", 0))

	rec := getAnalytics(t, handler, "ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
