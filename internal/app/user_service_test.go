package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"doubtconnect/internal/model"
)

func seedUser(t *testing.T, store *fakeUserStore) *model.User {
	t.Helper()
	user := &model.User{
		Username:  "alice1",
		Email:     "alice1@vcet.edu.in",
		FirstName: "Alice",
		LastName:  "Anand",
		City:      "Mumbai",
	}
	require.NoError(t, store.Create(context.Background(), user))
	return user
}

func TestUserService_GetByID(t *testing.T) {
	t.Parallel()
	store := newFakeUserStore()
	seeded := seedUser(t, store)
	svc := NewUserService(store)

	user, err := svc.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, "alice1", user.Username)

	_, err = svc.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_GetByUsername(t *testing.T) {
	t.Parallel()
	store := newFakeUserStore()
	seedUser(t, store)
	svc := NewUserService(store)

	user, err := svc.GetByUsername(context.Background(), "alice1")
	require.NoError(t, err)
	require.Equal(t, "alice1@vcet.edu.in", user.Email)

	_, err = svc.GetByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetByUsername(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_UpdateSettings_PartialOnly(t *testing.T) {
	t.Parallel()
	store := newFakeUserStore()
	seeded := seedUser(t, store)
	svc := NewUserService(store)

	city := "Pune"
	updated, err := svc.UpdateSettings(context.Background(), seeded.ID, model.ProfileUpdate{City: &city})
	require.NoError(t, err)

	require.Equal(t, "Pune", updated.City)
	require.Equal(t, "Alice", updated.FirstName)
	require.Equal(t, "Anand", updated.LastName)
	require.Empty(t, updated.DisplayPicture)
}
