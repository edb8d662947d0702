package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/model"
)

func TestAppointmentCreateAndList(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)

	jane := createTestPatient(t, db, "Jane Doe", "555-1111", "")
	john := createTestPatient(t, db, "John Roe", "777-2222", "")

	appts := []*model.Appointment{
		{PatientID: jane.ID, DoctorName: "Dr. Smith", Date: "2026-09-01", Time: "09:00", Status: "Scheduled", Type: "Regular"},
		{PatientID: jane.ID, DoctorName: "Dr. Smith", Date: "2026-09-02", Time: "10:00", Status: "Completed", Type: "Follow-up"},
		{PatientID: john.ID, DoctorName: "Dr. Jones", Date: "2026-09-01", Time: "09:00", Status: "Scheduled", Type: "Check-up"},
	}
	for _, a := range appts {
		require.NoError(t, repo.Create(ctx, a))
	}

	all, err := repo.List(ctx, model.AppointmentFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byDate, err := repo.List(ctx, model.AppointmentFilters{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byDoctor, err := repo.List(ctx, model.AppointmentFilters{Doctor: "Dr. Jones"})
	require.NoError(t, err)
	require.Len(t, byDoctor, 1)
	assert.Equal(t, john.ID, byDoctor[0].PatientID)
	assert.Equal(t, "John Roe", byDoctor[0].PatientName)
	assert.Equal(t, "777-2222", byDoctor[0].PatientPhone)
	assert.Equal(t, "2026-09-01", byDoctor[0].Date)
	assert.Equal(t, "09:00", byDoctor[0].Time)

	byStatus, err := repo.List(ctx, model.AppointmentFilters{Status: "Completed"})
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)
}

func TestAppointmentConflicts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)

	jane := createTestPatient(t, db, "Jane Doe", "555-1111", "")

	appt := &model.Appointment{
		PatientID: jane.ID, DoctorName: "Dr. Smith",
		Date: "2026-09-01", Time: "09:00",
		Status: "Scheduled", Type: "Regular",
	}
	require.NoError(t, repo.Create(ctx, appt))

	count, err := repo.CountConflicts(ctx, "Dr. Smith", "2026-09-01", "09:00")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Other slots and other doctors are free.
	count, err = repo.CountConflicts(ctx, "Dr. Smith", "2026-09-01", "09:30")
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = repo.CountConflicts(ctx, "Dr. Jones", "2026-09-01", "09:00")
	require.NoError(t, err)
	assert.Zero(t, count)

	// A cancelled booking releases the slot.
	require.NoError(t, repo.UpdateStatus(ctx, appt.ID, "Cancelled"))
	count, err = repo.CountConflicts(ctx, "Dr. Smith", "2026-09-01", "09:00")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAppointmentDoctorsAndStats(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)

	jane := createTestPatient(t, db, "Jane Doe", "555-1111", "")
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	require.NoError(t, repo.Create(ctx, &model.Appointment{
		PatientID: jane.ID, DoctorName: "Dr. Smith", Date: today, Time: "09:00",
		Status: "Scheduled", Type: "Regular",
	}))
	require.NoError(t, repo.Create(ctx, &model.Appointment{
		PatientID: jane.ID, DoctorName: "Dr. Jones", Date: tomorrow, Time: "10:00",
		Status: "Scheduled", Type: "Regular",
	}))
	require.NoError(t, repo.Create(ctx, &model.Appointment{
		PatientID: jane.ID, DoctorName: "Dr. Smith", Date: "2026-01-05", Time: "11:00",
		Status: "Completed", Type: "Follow-up",
	}))

	doctors, err := repo.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Jones", "Dr. Smith"}, doctors)

	stats, err := repo.Stats(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Upcoming)

	statuses, err := repo.StatusDistribution(ctx)
	require.NoError(t, err)
	assert.Len(t, statuses, 2)
}
