package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddharthpandey07/UserManage/internal/apperror"
	"github.com/siddharthpandey07/UserManage/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleUser() models.User {
	return models.User{
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "leanne@example.org",
		Phone:    "1-770-736-8031",
		Website:  "hildegard.org",
		Address:  models.Address{Street: "Kulas Light", City: "Gwenborough"},
		Company:  models.Company{Name: "Romaguera-Crona"},
	}
}

func TestCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := sampleUser()
	require.NoError(t, db.Create(ctx, &u))
	require.NotZero(t, u.ID, "create assigns the id")

	got, err := db.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, *got)
}

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a, b := sampleUser(), sampleUser()
	b.Username = "second"
	require.NoError(t, db.Create(ctx, &a))
	require.NoError(t, db.Create(ctx, &b))

	assert.Greater(t, b.ID, a.ID)
}

func TestList_OrderedByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users, err := db.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	a, b := sampleUser(), sampleUser()
	require.NoError(t, db.Create(ctx, &a))
	require.NoError(t, db.Create(ctx, &b))

	users, err = db.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, a.ID, users[0].ID)
	assert.Equal(t, b.ID, users[1].ID)
}

func TestUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := sampleUser()
	require.NoError(t, db.Create(ctx, &u))

	u.Address.City = "Boston"
	u.Company.Name = "New Venture"
	require.NoError(t, db.Update(ctx, &u))

	got, err := db.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Boston", got.Address.City)
	assert.Equal(t, "New Venture", got.Company.Name)
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	db := newTestDB(t)

	u := sampleUser()
	u.ID = 424242
	err := db.Update(context.Background(), &u)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDelete_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := sampleUser()
	require.NoError(t, db.Create(ctx, &u))

	require.NoError(t, db.Delete(ctx, u.ID))
	_, err := db.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, db.Delete(ctx, u.ID), "deleting an absent id is not an error")
}
