package services_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigwork_backend/internal/filter"
	"gigwork_backend/internal/models"
	"gigwork_backend/internal/services"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"
)

func floatPtr(v float64) *float64 { return &v }

func TestPostingService_CreateDefaultsToOpen(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo(newUser("u1", "Olga", "Owner", "owner@example.com"))
	svc := services.NewPostingService(newFakePostingRepo(), userRepo)

	rep, err := svc.Create("u1", &dto.PostingRequest{
		Title:       "Snow shoveling",
		Description: "Clear the driveway",
		Price:       floatPtr(40),
	})

	require.NoError(t, err)
	assert.Equal(t, "open", rep["status"])
	assert.Equal(t, 40.0, rep["price"])

	owner, ok := rep["owner"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "u1", owner["id"])
	assert.Equal(t, "Olga", owner["first_name"])
	// public representation never carries contact details
	assert.NotContains(t, owner, "email")
}

func TestPostingService_CreateUnknownActor(t *testing.T) {
	t.Parallel()

	svc := services.NewPostingService(newFakePostingRepo(), newFakeUserRepo())

	_, err := svc.Create("ghost", &dto.PostingRequest{
		Title:       "Snow shoveling",
		Description: "Clear the driveway",
		Price:       floatPtr(40),
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
}

func TestPostingService_PastExpiryReadsAsExpired(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-48 * time.Hour)
	posting := newPosting("p1", "u1", models.PostingStatusOpen)
	posting.ExpiresAt = &past

	userRepo := newFakeUserRepo(newUser("u1", "Olga", "Owner", "owner@example.com"))
	repo := newFakePostingRepo(posting)
	svc := services.NewPostingService(repo, userRepo)

	rep, err := svc.Get("p1")

	require.NoError(t, err)
	assert.Equal(t, "expired", rep["status"])

	// derived at read time only; the stored row keeps its status
	stored, err := repo.FindByID("p1")
	require.NoError(t, err)
	assert.Equal(t, models.PostingStatusOpen, stored.Status)
}

func TestPostingService_ListFiltersByStatus(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(72 * time.Hour)

	expired := newPosting("p1", "u1", models.PostingStatusOpen)
	expired.ExpiresAt = &past
	open := newPosting("p2", "u1", models.PostingStatusOpen)
	open.ExpiresAt = &future

	userRepo := newFakeUserRepo(newUser("u1", "Olga", "Owner", "owner@example.com"))
	svc := services.NewPostingService(newFakePostingRepo(expired, open), userRepo)

	reps, err := svc.List([]filter.Criterion{{Field: "status", Value: "open"}})

	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, "p2", reps[0]["id"])
}

func TestPostingService_UpdateByNonOwnerForbidden(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo(newUser("u1", "Olga", "Owner", "owner@example.com"))
	svc := services.NewPostingService(newFakePostingRepo(newPosting("p1", "u1", models.PostingStatusOpen)), userRepo)

	_, err := svc.Update("intruder", "p1", &dto.PostingRequest{
		Title:       "Hijacked",
		Description: "x",
		Price:       floatPtr(1),
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestPostingService_DeleteByOwner(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo(newUser("u1", "Olga", "Owner", "owner@example.com"))
	repo := newFakePostingRepo(newPosting("p1", "u1", models.PostingStatusOpen))
	svc := services.NewPostingService(repo, userRepo)

	require.NoError(t, svc.Delete("u1", "p1"))

	_, err := repo.FindByID("p1")
	assert.Error(t, err)
}

func TestPostingService_GetNotFound(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	svc := services.NewPostingService(newFakePostingRepo(), userRepo)

	_, err := svc.Get("missing")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}
