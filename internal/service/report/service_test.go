package report

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/config"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository/sqlite"
	"github.com/clinicore/clinic-api/pkg/logger"
)

func newTestService(t *testing.T) (*Service, *sqlx.DB) {
	t.Helper()

	db, err := sqlite.NewDB(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(db))

	log := logger.New(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	return NewService(sqlite.NewReportRepository(db), sqlite.NewAppointmentRepository(db), log), db
}

func TestDashboardCachesResult(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	patient := &model.Patient{Name: "Jane Doe", Phone: "555-1111"}
	require.NoError(t, sqlite.NewPatientRepository(db).Create(ctx, patient))

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPatients)

	// A write after the first read is invisible until the cache expires.
	second := &model.Patient{Name: "John Roe", Phone: "777-2222"}
	require.NoError(t, sqlite.NewPatientRepository(db).Create(ctx, second))

	stats, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPatients)
}

func TestPeriodStatsCountsRecentActivity(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	patient := &model.Patient{Name: "Jane Doe", Phone: "555-1111"}
	require.NoError(t, sqlite.NewPatientRepository(db).Create(ctx, patient))

	today := time.Now().Format("2006-01-02")
	bill := &model.Bill{PatientID: patient.ID, Amount: 200, PaidAmount: 80, PaymentStatus: model.PaymentStatusPartial, BillDate: today}
	require.NoError(t, sqlite.NewBillRepository(db).Create(ctx, bill))

	// Default window is the trailing 30 days.
	stats, err := svc.PeriodStats(ctx, model.ReportRange{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.NewPatients)
	assert.InDelta(t, 200, stats.Revenue, 0.001)
	assert.InDelta(t, 5.2, stats.PatientGrowth, 0.001)

	// An explicit range that ends before the bill excludes it.
	stats, err = svc.PeriodStats(ctx, model.ReportRange{
		StartDate: "2020-01-01",
		EndDate:   "2020-12-31",
	})
	require.NoError(t, err)
	assert.Zero(t, stats.Appointments)
	assert.InDelta(t, 0, stats.Revenue, 0.001)

	trend, err := svc.RevenueTrend(ctx, model.ReportRange{StartDate: today, EndDate: today})
	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.InDelta(t, 200, trend[0].Revenue, 0.001)
}

func TestAppointmentReport(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	patient := &model.Patient{Name: "Jane Doe", Phone: "555-1111"}
	require.NoError(t, sqlite.NewPatientRepository(db).Create(ctx, patient))

	appts := sqlite.NewAppointmentRepository(db)
	for _, a := range []*model.Appointment{
		{PatientID: patient.ID, DoctorName: "Dr. Smith", Date: "2026-09-10", Time: "09:00", Status: model.AppointmentStatusScheduled, Type: model.AppointmentTypeRegular},
		{PatientID: patient.ID, DoctorName: "Dr. Smith", Date: "2026-09-10", Time: "10:00", Status: model.AppointmentStatusCompleted, Type: model.AppointmentTypeEmergency},
		{PatientID: patient.ID, DoctorName: "Dr. Smith", Date: "2026-09-11", Time: "09:00", Status: model.AppointmentStatusCancelled, Type: model.AppointmentTypeRegular},
		{PatientID: patient.ID, DoctorName: "Dr. Smith", Date: "2026-09-11", Time: "10:00", Status: model.AppointmentStatusCompleted, Type: model.AppointmentTypeRegular},
	} {
		require.NoError(t, appts.Create(ctx, a))
	}

	report, err := svc.AppointmentReport(ctx)
	require.NoError(t, err)
	assert.Len(t, report.ByStatus, 3)
	assert.Len(t, report.ByType, 2)
	assert.InDelta(t, 0.5, report.CompletionRate, 0.001)
	assert.InDelta(t, 0.25, report.CancellationRate, 0.001)
	assert.InDelta(t, 2.0, report.AveragePerDay, 0.001)
}

func TestAppointmentReportEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	report, err := svc.AppointmentReport(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.CompletionRate)
	assert.Zero(t, report.AveragePerDay)
}
