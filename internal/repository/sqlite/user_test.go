package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/model"
)

func TestUserCRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &model.User{
		Username:     "reception1",
		PasswordHash: "hash",
		FullName:     "Front Desk",
		Role:         "reception",
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByUsername(ctx, "reception1")
	require.NoError(t, err)
	assert.Equal(t, "Front Desk", got.FullName)

	got.FullName = "Front Desk Lead"
	got.Role = "nurse"
	require.NoError(t, repo.Update(ctx, got))

	require.NoError(t, repo.SetActive(ctx, got.ID, false))
	require.NoError(t, repo.UpdatePassword(ctx, got.ID, "newhash"))

	reloaded, err := repo.GetByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Front Desk Lead", reloaded.FullName)
	assert.Equal(t, "nurse", reloaded.Role)
	assert.False(t, reloaded.IsActive)
	assert.Equal(t, "newhash", reloaded.PasswordHash)
}

func TestUserRoleDistribution(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	for _, u := range []model.User{
		{Username: "a", PasswordHash: "h", FullName: "A", Role: "doctor", IsActive: true},
		{Username: "b", PasswordHash: "h", FullName: "B", Role: "doctor", IsActive: true},
		{Username: "c", PasswordHash: "h", FullName: "C", Role: "admin", IsActive: false},
	} {
		u := u
		require.NoError(t, repo.Create(ctx, &u))
	}

	dist, err := repo.RoleDistribution(ctx)
	require.NoError(t, err)
	counts := map[string]int{}
	for _, d := range dist {
		counts[d.Label] = d.Count
	}
	assert.Equal(t, 2, counts["doctor"])
	assert.Equal(t, 1, counts["admin"])

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.ActiveUsers)
}
