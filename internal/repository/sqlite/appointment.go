package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	query := `
		INSERT INTO appointments (patient_id, doctor_name, appointment_date, appointment_time,
			status, appointment_type, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	appt.CreatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, query,
		appt.PatientID,
		appt.DoctorName,
		appt.Date,
		appt.Time,
		appt.Status,
		appt.Type,
		appt.Notes,
		appt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	appt.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read appointment id: %w", err)
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = ?`
	var appt model.Appointment
	if err := r.db.GetContext(ctx, &appt, query, id); err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appt, nil
}

func (r *appointmentRepository) List(ctx context.Context, filters model.AppointmentFilters) ([]*model.AppointmentRow, error) {
	query := `
		SELECT a.id, a.patient_id, p.name AS patient_name, p.phone AS patient_phone,
			a.doctor_name, a.appointment_date, a.appointment_time,
			a.status, a.appointment_type, a.notes
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		WHERE 1=1
	`
	args := []interface{}{}
	if filters.Date != "" {
		query += " AND a.appointment_date = ?"
		args = append(args, filters.Date)
	}
	if filters.Status != "" {
		query += " AND a.status = ?"
		args = append(args, filters.Status)
	}
	if filters.Doctor != "" {
		query += " AND a.doctor_name = ?"
		args = append(args, filters.Doctor)
	}
	query += " ORDER BY a.appointment_date DESC, a.appointment_time DESC"

	var rows []*model.AppointmentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return rows, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE appointments SET status = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	return nil
}

// CountConflicts counts non-cancelled appointments already booked for the
// same doctor, date and time slot.
func (r *appointmentRepository) CountConflicts(ctx context.Context, doctor, date, timeOfDay string) (int, error) {
	query := `
		SELECT COUNT(*) FROM appointments
		WHERE doctor_name = ? AND appointment_date = ? AND appointment_time = ?
			AND status != 'Cancelled'
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, doctor, date, timeOfDay); err != nil {
		return 0, fmt.Errorf("failed to count appointment conflicts: %w", err)
	}
	return count, nil
}

func (r *appointmentRepository) ListDoctors(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT doctor_name FROM appointments ORDER BY doctor_name`
	var doctors []string
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *appointmentRepository) Stats(ctx context.Context, today string) (*model.AppointmentStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN appointment_date = ? THEN 1 ELSE 0 END), 0) AS today,
			COALESCE(SUM(CASE WHEN status = 'Completed' THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN appointment_date >= ? AND status = 'Scheduled' THEN 1 ELSE 0 END), 0) AS upcoming
		FROM appointments
	`
	var stats model.AppointmentStats
	if err := r.db.GetContext(ctx, &stats, query, today, today); err != nil {
		return nil, fmt.Errorf("failed to get appointment stats: %w", err)
	}
	return &stats, nil
}

func (r *appointmentRepository) StatusDistribution(ctx context.Context) ([]model.StatusCount, error) {
	query := `SELECT status AS label, COUNT(*) AS count FROM appointments GROUP BY status`
	var rows []model.StatusCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get status distribution: %w", err)
	}
	return rows, nil
}

func (r *appointmentRepository) TypeDistribution(ctx context.Context) ([]model.StatusCount, error) {
	query := `SELECT appointment_type AS label, COUNT(*) AS count FROM appointments GROUP BY appointment_type`
	var rows []model.StatusCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get type distribution: %w", err)
	}
	return rows, nil
}

// ActiveDays counts the distinct dates that have at least one booking.
func (r *appointmentRepository) ActiveDays(ctx context.Context) (int, error) {
	var days int
	query := `SELECT COUNT(DISTINCT appointment_date) FROM appointments`
	if err := r.db.GetContext(ctx, &days, query); err != nil {
		return 0, fmt.Errorf("failed to count active days: %w", err)
	}
	return days, nil
}
