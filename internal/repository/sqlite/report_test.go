package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinic-api/internal/model"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewReportRepository(db)
	today := time.Now().Format("2006-01-02")

	jane := createTestPatient(t, db, "Jane Doe", "555-1111", "")

	appointments := NewAppointmentRepository(db)
	require.NoError(t, appointments.Create(ctx, &model.Appointment{
		PatientID: jane.ID, DoctorName: "Dr. Smith", Date: today, Time: "09:00",
		Status: "Scheduled", Type: "Regular",
	}))
	require.NoError(t, appointments.Create(ctx, &model.Appointment{
		PatientID: jane.ID, DoctorName: "Dr. Smith", Date: today, Time: "10:00",
		Status: "Cancelled", Type: "Regular",
	}))

	bills := NewBillRepository(db)
	require.NoError(t, bills.Create(ctx, &model.Bill{
		PatientID: jane.ID, Amount: 100, PaidAmount: 100, PaymentStatus: "Paid", BillDate: today,
	}))
	require.NoError(t, bills.Create(ctx, &model.Bill{
		PatientID: jane.ID, Amount: 50, PaymentStatus: "Unpaid", BillDate: today,
	}))
	// Unpaid for more than 30 days counts as overdue.
	old := time.Now().AddDate(0, 0, -45).Format("2006-01-02")
	require.NoError(t, bills.Create(ctx, &model.Bill{
		PatientID: jane.ID, Amount: 75, PaymentStatus: "Unpaid", BillDate: old,
	}))

	stats, err := repo.DashboardStats(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPatients)
	assert.Equal(t, 1, stats.NewPatientsToday)
	assert.Equal(t, 1, stats.TodayAppointments, "only scheduled appointments count")
	assert.Equal(t, 100.0, stats.TotalRevenue, "only fully paid bills count toward revenue")
	assert.Equal(t, 2, stats.UnpaidBills)
	assert.Equal(t, 1, stats.OverdueBills)
}

func TestGenderAndAgeDistribution(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewReportRepository(db)
	patients := NewPatientRepository(db)

	dob := func(yearsAgo int) *string {
		d := time.Now().AddDate(-yearsAgo, 0, -30).Format("2006-01-02")
		return &d
	}
	// Just short of the 31st birthday; whole-year age 30 stays in 18-30.
	almost31 := time.Now().AddDate(-31, 1, 0).Format("2006-01-02")
	rows := []*model.Patient{
		{Name: "Kid", Phone: "1", Gender: "Male", DateOfBirth: dob(10)},
		{Name: "Young", Phone: "2", Gender: "Female", DateOfBirth: dob(25)},
		{Name: "Boundary", Phone: "6", Gender: "Male", DateOfBirth: &almost31},
		{Name: "Mid", Phone: "3", Gender: "Female", DateOfBirth: dob(40)},
		{Name: "Senior", Phone: "4", Gender: "Male", DateOfBirth: dob(70)},
		{Name: "Unknown", Phone: "5", Gender: "Female"},
	}
	for _, p := range rows {
		require.NoError(t, patients.Create(ctx, p))
	}

	genders, err := repo.GenderDistribution(ctx)
	require.NoError(t, err)
	counts := map[string]int{}
	for _, g := range genders {
		counts[g.Gender] = g.Count
	}
	assert.Equal(t, 3, counts["Male"])
	assert.Equal(t, 3, counts["Female"])

	ages, err := repo.AgeDistribution(ctx)
	require.NoError(t, err)
	bands := map[string]int{}
	for _, a := range ages {
		bands[a.Band] = a.Count
	}
	assert.Equal(t, 1, bands["Under 18"])
	assert.Equal(t, 2, bands["18-30"])
	assert.Equal(t, 1, bands["31-45"])
	assert.Equal(t, 1, bands["Over 60"])
	assert.Equal(t, 1, bands["Not specified"])
}

func TestPatientStatsActivePatients(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewReportRepository(db)
	today := time.Now().Format("2006-01-02")

	jane := createTestPatient(t, db, "Jane Doe", "555-1111", "")
	john := createTestPatient(t, db, "John Roe", "777-2222", "")

	records := NewMedicalRecordRepository(db)
	recent := time.Now().AddDate(0, 0, -5).Format("2006-01-02")
	stale := time.Now().AddDate(0, 0, -90).Format("2006-01-02")
	require.NoError(t, records.Create(ctx, &model.MedicalRecord{
		PatientID: jane.ID, VisitDate: recent, DoctorName: "Dr. Smith",
	}))
	require.NoError(t, records.Create(ctx, &model.MedicalRecord{
		PatientID: john.ID, VisitDate: stale, DoctorName: "Dr. Smith",
	}))

	stats, err := repo.PatientStats(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPatients)
	assert.Equal(t, 2, stats.RegisteredToday)
	assert.Equal(t, 1, stats.ActivePatients, "only patients with a visit in the last 30 days")
}

func TestPeriodCounters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewReportRepository(db)
	today := time.Now().Format("2006-01-02")
	start := time.Now().AddDate(0, 0, -30).Format("2006-01-02")

	jane := createTestPatient(t, db, "Jane Doe", "555-1111", "")

	bills := NewBillRepository(db)
	require.NoError(t, bills.Create(ctx, &model.Bill{
		PatientID: jane.ID, Amount: 100, PaidAmount: 60, PaymentStatus: "Partial",
		BillDate: today,
	}))
	// Billed before the window, excluded from range queries.
	require.NoError(t, bills.Create(ctx, &model.Bill{
		PatientID: jane.ID, Amount: 500, PaidAmount: 500, PaymentStatus: "Paid",
		BillDate: time.Now().AddDate(0, 0, -60).Format("2006-01-02"),
	}))

	patients, err := repo.CountPatientsBetween(ctx, start, today)
	require.NoError(t, err)
	assert.Equal(t, 1, patients)

	// Period revenue is billed amounts, paid or not.
	revenue, err := repo.RevenueBetween(ctx, start, today)
	require.NoError(t, err)
	assert.Equal(t, 100.0, revenue)

	trend, err := repo.RevenueTrend(ctx, start, today)
	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.Equal(t, today, trend[0].Date)
	assert.Equal(t, 100.0, trend[0].Revenue)
}
