package sqlite

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/config"
	"github.com/clinicore/clinic-api/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := NewDB(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func createTestPatient(t *testing.T, db *sqlx.DB, name, phone, nationalID string) *model.Patient {
	t.Helper()

	patient := &model.Patient{
		Name:   name,
		Phone:  phone,
		Gender: "Female",
	}
	if nationalID != "" {
		patient.NationalID = &nationalID
	}

	repo := NewPatientRepository(db)
	require.NoError(t, repo.Create(context.Background(), patient))
	return patient
}
