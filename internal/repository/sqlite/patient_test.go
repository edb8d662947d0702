package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/model"
)

func TestPatientCreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	created := createTestPatient(t, db, "Jane Doe", "555-1111", "NID-001")
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "555-1111", got.Phone)
	require.NotNil(t, got.NationalID)
	assert.Equal(t, "NID-001", *got.NationalID)
	assert.Nil(t, got.DateOfBirth)

	dob := "1990-05-01"
	created.DateOfBirth = &dob
	require.NoError(t, repo.Update(ctx, created))
	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DateOfBirth)
	assert.Equal(t, "1990-05-01", *got.DateOfBirth)
}

func TestPatientNationalIDOptionalButUnique(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	// Several patients without a national id may coexist.
	createTestPatient(t, db, "A", "111", "")
	createTestPatient(t, db, "B", "222", "")

	createTestPatient(t, db, "C", "333", "NID-C")
	dup := &model.Patient{Name: "D", Phone: "444"}
	nid := "NID-C"
	dup.NationalID = &nid
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestPatientSearch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	createTestPatient(t, db, "Jane Doe", "555-1111", "NID-001")
	createTestPatient(t, db, "John Roe", "777-2222", "NID-002")

	byPhone, err := repo.Search(ctx, "555")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Jane Doe", byPhone[0].Name)

	byName, err := repo.Search(ctx, "roe")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "John Roe", byName[0].Name)

	byNID, err := repo.Search(ctx, "NID-00")
	require.NoError(t, err)
	assert.Len(t, byNID, 2)

	none, err := repo.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPatientUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	created := createTestPatient(t, db, "Jane Doe", "555-1111", "")
	created.Phone = "555-9999"
	created.BloodType = "O+"
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-9999", got.Phone)
	assert.Equal(t, "O+", got.BloodType)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPatientSummaries(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	jane := createTestPatient(t, db, "Jane Doe", "555-1111", "")
	createTestPatient(t, db, "John Roe", "777-2222", "")

	records := NewMedicalRecordRepository(db)
	for _, visit := range []string{"2026-08-01", "2026-08-15"} {
		require.NoError(t, records.Create(ctx, &model.MedicalRecord{
			PatientID:  jane.ID,
			VisitDate:  visit,
			Diagnosis:  "Flu",
			DoctorName: "Dr. Smith",
		}))
	}

	repo := NewPatientRepository(db)
	summaries, err := repo.Summaries(ctx, "")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byName := map[string]int{}
	for _, s := range summaries {
		byName[s.Name] = s.RecordsCount
		if s.Name == "Jane Doe" {
			require.NotNil(t, s.LastVisit)
			assert.Equal(t, "2026-08-15", *s.LastVisit)
		} else {
			assert.Nil(t, s.LastVisit)
		}
	}
	assert.Equal(t, 2, byName["Jane Doe"])
	assert.Equal(t, 0, byName["John Roe"])

	matched, err := repo.Summaries(ctx, "555")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Jane Doe", matched[0].Name)
}
