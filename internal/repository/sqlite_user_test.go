package repository

import (
	"context"
	"testing"
	"time"

	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:           uuid.New().String(),
		Name:         "Admin User",
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteUserRepo(db)

	u := newUser("admin@example.com")
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_DuplicateEmailRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteUserRepo(db)

	require.NoError(t, repo.Create(ctx, newUser("dup@example.com")))
	assert.Error(t, repo.Create(ctx, newUser("dup@example.com")))
}

func TestAuthSessionRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	users := NewSQLiteUserRepo(db)
	sessions := NewSQLiteAuthSessionRepo(db)

	u := newUser("admin@example.com")
	require.NoError(t, users.Create(ctx, u))

	now := time.Now().UTC()
	s := &domain.AuthSession{
		Token:     "tok-123",
		UserID:    u.ID,
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, sessions.Create(ctx, s))

	got, err := sessions.GetByToken(ctx, "tok-123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.False(t, got.Expired(now))
	assert.True(t, got.Expired(now.Add(25*time.Hour)))
}

func TestAuthSessionRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	users := NewSQLiteUserRepo(db)
	sessions := NewSQLiteAuthSessionRepo(db)

	u := newUser("admin@example.com")
	require.NoError(t, users.Create(ctx, u))
	now := time.Now().UTC()
	require.NoError(t, sessions.Create(ctx, &domain.AuthSession{
		Token: "tok-del", UserID: u.ID, ExpiresAt: now.Add(time.Hour), CreatedAt: now,
	}))

	require.NoError(t, sessions.Delete(ctx, "tok-del"))
	_, err := sessions.GetByToken(ctx, "tok-del")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an unknown token is not an error.
	assert.NoError(t, sessions.Delete(ctx, "never-existed"))
}
