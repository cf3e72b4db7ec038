package services_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigwork_backend/internal/filter"
	"gigwork_backend/internal/models"
	"gigwork_backend/internal/services"
	"gigwork_backend/internal/services/dto"
	"gigwork_backend/pkg/apperrors"
)

func newUser(id, first, last, email string) *models.User {
	u := &models.User{
		FirstName: first,
		LastName:  last,
		Email:     email,
	}
	u.ID = id
	return u
}

func TestUserService_CreateIssuesToken(t *testing.T) {
	t.Parallel()

	svc := services.NewUserService(newFakeUserRepo())

	resp, err := svc.Create(&dto.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ada", resp.User["first_name"])
	assert.Equal(t, "ada@example.com", resp.User["email"])
	assert.NotEmpty(t, resp.User["id"])
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(newUser("u1", "Ada", "Lovelace", "ada@example.com"))
	svc := services.NewUserService(repo)

	_, err := svc.Create(&dto.CreateUserRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "ada@example.com",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestUserService_UpdateDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(
		newUser("u1", "Ada", "Lovelace", "ada@example.com"),
		newUser("u2", "Bob", "Smith", "bob@example.com"),
	)
	svc := services.NewUserService(repo)

	// u2 tries to take u1's email
	_, err := svc.Update("u2", "u2", &dto.UpdateUserRequest{
		FirstName: "Bob",
		LastName:  "Smith",
		Email:     "ada@example.com",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	stored, findErr := repo.FindByID("u2")
	require.NoError(t, findErr)
	assert.Equal(t, "bob@example.com", stored.Email, "rejected update must not change the record")
}

func TestUserService_UpdateKeepingOwnEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(newUser("u1", "Ada", "Lovelace", "ada@example.com"))
	svc := services.NewUserService(repo)

	rep, err := svc.Update("u1", "u1", &dto.UpdateUserRequest{
		FirstName: "Augusta",
		LastName:  "King",
		Email:     "ada@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", rep["email"])
}

func TestUserService_GetNotFound(t *testing.T) {
	t.Parallel()

	svc := services.NewUserService(newFakeUserRepo())

	_, err := svc.Get("missing")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestUserService_ListAppliesFilter(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(
		newUser("u1", "Ada", "Lovelace", "ada@example.com"),
		newUser("u2", "Bob", "Smith", "bob@example.com"),
	)
	svc := services.NewUserService(repo)

	reps, err := svc.List([]filter.Criterion{{Field: "first_name", Value: "Bob"}})

	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, "u2", reps[0]["id"])
}

func TestUserService_UpdateOtherUserForbidden(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(newUser("u1", "Ada", "Lovelace", "ada@example.com"))
	svc := services.NewUserService(repo)

	_, err := svc.Update("u2", "u1", &dto.UpdateUserRequest{
		FirstName: "Hijacked",
		LastName:  "Name",
		Email:     "evil@example.com",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestUserService_UpdateSelf(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(newUser("u1", "Ada", "Lovelace", "ada@example.com"))
	svc := services.NewUserService(repo)

	rep, err := svc.Update("u1", "u1", &dto.UpdateUserRequest{
		FirstName: "Augusta",
		LastName:  "King",
		Email:     "ada@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Augusta", rep["first_name"])

	stored, err := repo.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Augusta", stored.FirstName)
}

func TestUserService_DeleteSelf(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(newUser("u1", "Ada", "Lovelace", "ada@example.com"))
	svc := services.NewUserService(repo)

	require.NoError(t, svc.Delete("u1", "u1"))

	_, err := repo.FindByID("u1")
	assert.Error(t, err)
}

func TestUserService_DeleteOtherUserForbidden(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(newUser("u1", "Ada", "Lovelace", "ada@example.com"))
	svc := services.NewUserService(repo)

	err := svc.Delete("u2", "u1")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)

	_, findErr := repo.FindByID("u1")
	assert.NoError(t, findErr, "forbidden delete must not remove the record")
}
