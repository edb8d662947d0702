package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/config"
	"github.com/clinicore/clinic-api/pkg/security"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(db))
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	hasher := security.NewBcryptHasher(4)
	seed := config.AdminSeed{
		Username: "admin",
		Password: "admin123",
		FullName: "System Administrator",
		Email:    "admin@clinic.com",
	}

	require.NoError(t, SeedAdmin(ctx, db, hasher, seed))

	repo := NewUserRepository(db)
	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
	assert.True(t, admin.IsActive)

	_, err = hasher.Compare(admin.PasswordHash, "admin123")
	assert.NoError(t, err)

	// A populated users table is left alone.
	require.NoError(t, SeedAdmin(ctx, db, hasher, seed))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
