package user

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/config"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository/sqlite"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
	"github.com/clinicore/clinic-api/pkg/logger"
	"github.com/clinicore/clinic-api/pkg/security"
)

var testHasher = security.NewBcryptHasher(4)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := sqlite.NewDB(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(db))

	log := logger.New(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	return NewService(sqlite.NewUserRepository(db), testHasher, log)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, &model.CreateUserRequest{
		Username:        "drsmith",
		FullName:        "Dr. Smith",
		Role:            "doctor",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive, "new accounts default to active")
	assert.NotEqual(t, "secret123", created.PasswordHash)
}

func TestCreateUserRejectsDuplicatesAndMismatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	req := &model.CreateUserRequest{
		Username:        "drsmith",
		FullName:        "Dr. Smith",
		Role:            "doctor",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)

	_, err = svc.Create(ctx, &model.CreateUserRequest{
		Username:        "other",
		FullName:        "Other",
		Role:            "nurse",
		Password:        "secret123",
		ConfirmPassword: "different",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSetActiveGuardsOwnAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, &model.CreateUserRequest{
		Username:        "admin2",
		FullName:        "Second Admin",
		Role:            "admin",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	err = svc.SetActive(ctx, created.ID, created.ID, false)
	assert.True(t, apperrors.IsValidation(err), "cannot deactivate yourself")

	require.NoError(t, svc.SetActive(ctx, created.ID, created.ID+1, false))
	reloaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, &model.CreateUserRequest{
		Username:        "nurse1",
		FullName:        "Nurse",
		Role:            "nurse",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	temp, err := svc.ResetPassword(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultResetPassword, temp)

	reloaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	_, err = testHasher.Compare(reloaded.PasswordHash, model.DefaultResetPassword)
	assert.NoError(t, err)
}

func TestUpdateUserPartial(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, &model.CreateUserRequest{
		Username:        "drsmith",
		FullName:        "Dr. Smith",
		Role:            "doctor",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	email := "smith@clinic.com"
	updated, err := svc.Update(ctx, created.ID, &model.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "smith@clinic.com", updated.Email)
	assert.Equal(t, "Dr. Smith", updated.FullName, "untouched fields are preserved")
}
