package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
)

func TestUserRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createCoreTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{Name: "Alice", Email: null.StringFrom("alice@example.com")}
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.ID)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "alice@example.com", got.Email.String)

	u.Name = "Alice B"
	u.Email = null.String{}
	require.NoError(t, repo.Update(ctx, u))

	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice B", got.Name)
	require.False(t, got.Email.Valid)

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_NullEmail(t *testing.T) {
	db := newTestDB(t)
	createCoreTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{Name: "Bob"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.Email.Valid)
}

func TestUserRepository_ListPagination(t *testing.T) {
	db := newTestDB(t)
	createCoreTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entities.User{Name: "User"}))
	}

	users, total, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, users, 2)
	require.EqualValues(t, 3, users[0].ID)

	all, total, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, all, 5)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createCoreTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 999)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.User{ID: 999, Name: "x"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Delete(ctx, 999)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
