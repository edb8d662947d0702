package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (national_id, name, phone, email, date_of_birth, gender,
			address, emergency_contact, blood_type, allergies, created_at)
		VALUES (NULLIF(?, ''), ?, ?, ?, NULLIF(?, ''), ?, ?, ?, ?, ?, ?)
	`
	patient.CreatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, query,
		deref(patient.NationalID),
		patient.Name,
		patient.Phone,
		patient.Email,
		deref(patient.DateOfBirth),
		patient.Gender,
		patient.Address,
		patient.EmergencyContact,
		patient.BloodType,
		patient.Allergies,
		patient.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	patient.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read patient id: %w", err)
	}
	return nil
}

func (r *patientRepository) GetByID(ctx context.Context, id int64) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = ?`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY created_at DESC`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Search(ctx context.Context, term string) ([]*model.Patient, error) {
	query := `
		SELECT * FROM patients
		WHERE name LIKE ? OR phone LIKE ? OR national_id LIKE ?
		ORDER BY created_at DESC
	`
	pattern := "%" + term + "%"
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, pattern, pattern, pattern); err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients SET national_id = NULLIF(?, ''), name = ?, phone = ?, email = ?,
			date_of_birth = NULLIF(?, ''), gender = ?, address = ?, emergency_contact = ?,
			blood_type = ?, allergies = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		deref(patient.NationalID),
		patient.Name,
		patient.Phone,
		patient.Email,
		deref(patient.DateOfBirth),
		patient.Gender,
		patient.Address,
		patient.EmergencyContact,
		patient.BloodType,
		patient.Allergies,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM patients WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Summaries(ctx context.Context, search string) ([]*model.PatientSummary, error) {
	query := `
		SELECT p.id, p.name, p.phone, p.date_of_birth, p.gender, p.blood_type,
			COUNT(m.id) AS records_count,
			MAX(m.visit_date) AS last_visit
		FROM patients p
		LEFT JOIN medical_records m ON m.patient_id = p.id
	`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE p.name LIKE ? OR p.phone LIKE ?`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	query += ` GROUP BY p.id ORDER BY p.name`

	var summaries []*model.PatientSummary
	if err := r.db.SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get patient summaries: %w", err)
	}
	return summaries, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
