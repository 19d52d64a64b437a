package repository

import (
	"context"
	"testing"

	authdomain "devconnector-backend/internal/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &authdomain.User{Name: "A", Email: "a@x.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)
	require.False(t, user.Date.IsZero())

	err := repo.Create(ctx, &authdomain.User{Name: "B", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byEmail.Name = "mutated"
	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", byID.Name, "returned users are copies")

	missing, err := repo.FindByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(ctx, user.ID))
	gone, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, repo.Create(ctx, &authdomain.User{Name: "C", Email: "a@x.com"}), "email is free again after delete")
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("12345")
	require.NoError(t, err)
	assert.NotEqual(t, "12345", hash)
	assert.True(t, CheckPasswordHash("12345", hash))
	assert.False(t, CheckPasswordHash("54321", hash))
}
