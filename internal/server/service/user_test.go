package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddharthpandey07/UserManage/internal/apperror"
	"github.com/siddharthpandey07/UserManage/internal/logging"
	"github.com/siddharthpandey07/UserManage/internal/models"
)

// fakeRepo is an in-memory repository stub.
type fakeRepo struct {
	users  map[int64]models.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]models.User{}, nextID: 1}
}

func (f *fakeRepo) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	return &u, nil
}

func (f *fakeRepo) Create(ctx context.Context, u *models.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = *u
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperror.NotFound("user", u.ID)
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

func newTestService() (*UserService, *fakeRepo) {
	repo := newFakeRepo()
	return NewUserService(repo, logging.NewDefault(slog.LevelError)), repo
}

func validUser() models.User {
	return models.User{
		Name:    "Jane Doe",
		Email:   "jane@example.org",
		Phone:   "555-0100",
		Address: models.Address{Street: "Main St", City: "Springfield"},
	}
}

func TestCreate_DerivesUsernameWhenMissing(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validUser())
	require.NoError(t, err)

	assert.Equal(t, "USER-janedoe", created.Username)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreate_IgnoresClientSuppliedID(t *testing.T) {
	svc, _ := newTestService()

	u := validUser()
	u.ID = 999
	created, err := svc.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.User)
	}{
		{"missing email", func(u *models.User) { u.Email = "" }},
		{"missing phone", func(u *models.User) { u.Phone = "" }},
		{"missing street", func(u *models.User) { u.Address.Street = "" }},
		{"missing city", func(u *models.User) { u.Address.City = "" }},
		{"short name", func(u *models.User) { u.Name = "Jo"; u.Username = "valid" }},
		{"short username", func(u *models.User) { u.Username = "ab" }},
		{"short company", func(u *models.User) { u.Company.Name = "xy" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			u := validUser()
			tt.mutate(&u)

			_, err := svc.Create(context.Background(), u)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Empty(t, repo.users, "nothing stored on validation failure")
		})
	}
}

func TestUpdate_URLIDWins(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validUser())
	require.NoError(t, err)

	body := *created
	body.ID = 12345
	body.Address.City = "Boston"

	updated, err := svc.Update(context.Background(), created.ID, body)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Boston", updated.Address.City)
}

func TestUpdate_UnknownID(t *testing.T) {
	svc, _ := newTestService()

	u := validUser()
	u.Username = "ghost"
	_, err := svc.Update(context.Background(), 404, u)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	created, err := svc.Create(context.Background(), validUser())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.users)

	require.NoError(t, svc.Delete(context.Background(), created.ID), "idempotent")
}
