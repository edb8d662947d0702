package appointment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperrors "github.com/clinicore/clinic-api/pkg/errors"
	"github.com/clinicore/clinic-api/pkg/logger"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

type Service struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
	logger   *logger.Logger
}

func NewService(repo repository.AppointmentRepository, patients repository.PatientRepository, logger *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		logger:   logger.WithComponent("appointment_service"),
	}
}

// Create books an appointment. A slot already held by the same doctor
// at the same date and time is rejected unless the earlier booking was
// cancelled.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if _, err := s.patients.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.BadRequest("patient does not exist", err)
		}
		return nil, apperrors.Internal(err)
	}

	conflicts, err := s.repo.CountConflicts(ctx, req.DoctorName, req.Date, req.Time)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if conflicts > 0 {
		return nil, apperrors.Conflict("the doctor already has an appointment at this time")
	}

	status := req.Status
	if status == "" {
		status = model.AppointmentStatusScheduled
	}
	apptType := req.Type
	if apptType == "" {
		apptType = model.AppointmentTypeRegular
	}

	appt := &model.Appointment{
		PatientID:  req.PatientID,
		DoctorName: req.DoctorName,
		Date:       req.Date,
		Time:       req.Time,
		Status:     status,
		Type:       apptType,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("appointment booked",
		"appointment_id", appt.ID,
		"patient_id", appt.PatientID,
		"doctor", appt.DoctorName,
		"date", appt.Date,
		"time", appt.Time,
	)
	return appt, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, apperrors.Internal(err)
	}
	return appt, nil
}

func (s *Service) List(ctx context.Context, filters model.AppointmentFilters) ([]*model.AppointmentRow, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*model.Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperrors.Internal(err)
	}
	appt.Status = status
	s.logger.Info("appointment status updated", "appointment_id", id, "status", status)
	return appt, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]string, error) {
	doctors, err := s.repo.ListDoctors(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctors, nil
}

func (s *Service) Stats(ctx context.Context) (*model.AppointmentStats, error) {
	today := time.Now().Format("2006-01-02")
	stats, err := s.repo.Stats(ctx, today)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return stats, nil
}
