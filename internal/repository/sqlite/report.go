package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DashboardStats(ctx context.Context, today string) (*model.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM patients) AS total_patients,
			(SELECT COUNT(*) FROM patients WHERE DATE(created_at) = ?) AS new_patients_today,
			(SELECT COUNT(*) FROM appointments WHERE appointment_date = ? AND status = 'Scheduled') AS today_appointments,
			(SELECT COALESCE(SUM(amount), 0) FROM bills WHERE payment_status = 'Paid') AS total_revenue,
			(SELECT COUNT(*) FROM bills WHERE payment_status = 'Unpaid') AS unpaid_bills,
			(SELECT COUNT(*) FROM bills
				WHERE payment_status = 'Unpaid'
				AND julianday('now') - julianday(bill_date) > 30) AS overdue_bills
	`
	var stats model.DashboardStats
	if err := r.db.GetContext(ctx, &stats, query, today, today); err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return &stats, nil
}

func (r *reportRepository) CountPatientsBetween(ctx context.Context, start, end string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM patients WHERE DATE(created_at) BETWEEN ? AND ?`
	if err := r.db.GetContext(ctx, &count, query, start, end); err != nil {
		return 0, fmt.Errorf("failed to count patients between %s and %s: %w", start, end, err)
	}
	return count, nil
}

func (r *reportRepository) CountAppointmentsBetween(ctx context.Context, start, end string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM appointments WHERE appointment_date BETWEEN ? AND ?`
	if err := r.db.GetContext(ctx, &count, query, start, end); err != nil {
		return 0, fmt.Errorf("failed to count appointments between %s and %s: %w", start, end, err)
	}
	return count, nil
}

func (r *reportRepository) RevenueBetween(ctx context.Context, start, end string) (float64, error) {
	var revenue float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM bills WHERE bill_date BETWEEN ? AND ?`
	if err := r.db.GetContext(ctx, &revenue, query, start, end); err != nil {
		return 0, fmt.Errorf("failed to sum revenue between %s and %s: %w", start, end, err)
	}
	return revenue, nil
}

func (r *reportRepository) CountRecordsBetween(ctx context.Context, start, end string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM medical_records WHERE visit_date BETWEEN ? AND ?`
	if err := r.db.GetContext(ctx, &count, query, start, end); err != nil {
		return 0, fmt.Errorf("failed to count medical records between %s and %s: %w", start, end, err)
	}
	return count, nil
}

func (r *reportRepository) RevenueTrend(ctx context.Context, start, end string) ([]model.RevenuePoint, error) {
	query := `
		SELECT bill_date AS date, COALESCE(SUM(amount), 0) AS revenue
		FROM bills
		WHERE bill_date BETWEEN ? AND ?
		GROUP BY bill_date
		ORDER BY bill_date
	`
	var points []model.RevenuePoint
	if err := r.db.SelectContext(ctx, &points, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to get revenue trend: %w", err)
	}
	return points, nil
}

func (r *reportRepository) GenderDistribution(ctx context.Context) ([]model.GenderCount, error) {
	query := `
		SELECT COALESCE(NULLIF(gender, ''), 'Not specified') AS gender, COUNT(*) AS count
		FROM patients
		GROUP BY gender
	`
	var rows []model.GenderCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get gender distribution: %w", err)
	}
	return rows, nil
}

func (r *reportRepository) AgeDistribution(ctx context.Context) ([]model.AgeBand, error) {
	query := `
		SELECT
			CASE
				WHEN date_of_birth IS NULL THEN 'Not specified'
				WHEN CAST((julianday('now') - julianday(date_of_birth)) / 365 AS INTEGER) < 18 THEN 'Under 18'
				WHEN CAST((julianday('now') - julianday(date_of_birth)) / 365 AS INTEGER) <= 30 THEN '18-30'
				WHEN CAST((julianday('now') - julianday(date_of_birth)) / 365 AS INTEGER) <= 45 THEN '31-45'
				WHEN CAST((julianday('now') - julianday(date_of_birth)) / 365 AS INTEGER) <= 60 THEN '46-60'
				ELSE 'Over 60'
			END AS band,
			COUNT(*) AS count
		FROM patients
		GROUP BY band
		ORDER BY count DESC
	`
	var rows []model.AgeBand
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get age distribution: %w", err)
	}
	return rows, nil
}

func (r *reportRepository) PatientStats(ctx context.Context, today string) (*model.PatientReportStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM patients) AS total_patients,
			(SELECT COUNT(*) FROM patients
				WHERE strftime('%Y-%m', created_at) = strftime('%Y-%m', 'now')) AS new_this_month,
			(SELECT COUNT(DISTINCT patient_id) FROM medical_records
				WHERE julianday('now') - julianday(visit_date) <= 30) AS active_patients,
			(SELECT COUNT(*) FROM patients WHERE DATE(created_at) = ?) AS registered_today
	`
	var stats model.PatientReportStats
	if err := r.db.GetContext(ctx, &stats, query, today); err != nil {
		return nil, fmt.Errorf("failed to get patient report stats: %w", err)
	}
	return &stats, nil
}
