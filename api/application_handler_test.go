package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusmatch/backend/database"
	"github.com/campusmatch/backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTarget_HidesClosedProjects(t *testing.T) {
	open := &models.Project{Published: true}
	assert.Nil(t, applyTarget(open))

	// Archived projects must read as absent, not as a conflict, so their
	// existence is not leaked through the apply path.
	archived := &models.Project{Published: true, Archived: true}
	apiErr := applyTarget(archived)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	draft := &models.Project{}
	apiErr = applyTarget(draft)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	apiErr = applyTarget(nil)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestRankApplications_UnconfiguredRanker(t *testing.T) {
	handler := newApplicationHandler(database.Database{}, nil)

	router := chi.NewRouter()
	router.Post("/project/{projectID}/rank-applications", handler.rankApplications())

	req := httptest.NewRequest(http.MethodPost, "/project/"+uuid.NewString()+"/rank-applications", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}
