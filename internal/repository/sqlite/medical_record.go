package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

type medicalRecordRepository struct {
	db *sqlx.DB
}

func NewMedicalRecordRepository(db *sqlx.DB) repository.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (patient_id, visit_date, diagnosis, prescription,
			symptoms, tests_ordered, notes, doctor_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	record.CreatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, query,
		record.PatientID,
		record.VisitDate,
		record.Diagnosis,
		record.Prescription,
		record.Symptoms,
		record.Tests,
		record.Notes,
		record.DoctorName,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	record.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read medical record id: %w", err)
	}
	return nil
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error) {
	query := `SELECT * FROM medical_records WHERE patient_id = ? ORDER BY visit_date DESC`
	var records []*model.MedicalRecord
	if err := r.db.SelectContext(ctx, &records, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}

func (r *medicalRecordRepository) Stats(ctx context.Context, today string) (*model.MedicalRecordStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_records,
			COUNT(DISTINCT patient_id) AS unique_patients,
			COALESCE(SUM(CASE WHEN strftime('%Y-%m', visit_date) = strftime('%Y-%m', 'now') THEN 1 ELSE 0 END), 0) AS visits_this_month,
			COALESCE(SUM(CASE WHEN visit_date = ? THEN 1 ELSE 0 END), 0) AS visits_today
		FROM medical_records
	`
	var stats model.MedicalRecordStats
	if err := r.db.GetContext(ctx, &stats, query, today); err != nil {
		return nil, fmt.Errorf("failed to get medical record stats: %w", err)
	}
	return &stats, nil
}

func (r *medicalRecordRepository) CommonDiagnoses(ctx context.Context, limit int) ([]model.DiagnosisCount, error) {
	query := `
		SELECT diagnosis, COUNT(*) AS count
		FROM medical_records
		WHERE diagnosis IS NOT NULL AND diagnosis != ''
		GROUP BY diagnosis
		ORDER BY count DESC
		LIMIT ?
	`
	var rows []model.DiagnosisCount
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get common diagnoses: %w", err)
	}
	return rows, nil
}

func (r *medicalRecordRepository) MonthlyTrend(ctx context.Context, months int) ([]model.MonthCount, error) {
	query := `
		SELECT strftime('%Y-%m', visit_date) AS month, COUNT(*) AS count
		FROM medical_records
		GROUP BY month
		ORDER BY month DESC
		LIMIT ?
	`
	var rows []model.MonthCount
	if err := r.db.SelectContext(ctx, &rows, query, months); err != nil {
		return nil, fmt.Errorf("failed to get monthly visit trend: %w", err)
	}
	return rows, nil
}
