package medical

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

const commonDiagnosesLimit = 10

// Service manages the append-only visit history. Records are never
// updated or deleted once written.
type Service struct {
	repo     repository.MedicalRecordRepository
	patients repository.PatientRepository
	logger   *logger.Logger
}

func NewService(repo repository.MedicalRecordRepository, patients repository.PatientRepository, logger *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		logger:   logger.WithComponent("medical_service"),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	if _, err := s.patients.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.BadRequest("patient does not exist", err)
		}
		return nil, apperrors.Internal(err)
	}

	record := &model.MedicalRecord{
		PatientID:    req.PatientID,
		VisitDate:    req.VisitDate,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		Symptoms:     req.Symptoms,
		Tests:        req.Tests,
		Notes:        req.Notes,
		DoctorName:   req.DoctorName,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("medical record added",
		"record_id", record.ID,
		"patient_id", record.PatientID,
		"doctor", record.DoctorName,
	)
	return record, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, apperrors.Internal(err)
	}
	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return records, nil
}

func (s *Service) Stats(ctx context.Context) (*model.MedicalRecordStats, error) {
	today := time.Now().Format("2006-01-02")
	stats, err := s.repo.Stats(ctx, today)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return stats, nil
}

func (s *Service) CommonDiagnoses(ctx context.Context) ([]model.DiagnosisCount, error) {
	rows, err := s.repo.CommonDiagnoses(ctx, commonDiagnosesLimit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}

func (s *Service) MonthlyTrend(ctx context.Context, months int) ([]model.MonthCount, error) {
	if months <= 0 {
		months = 6
	}
	rows, err := s.repo.MonthlyTrend(ctx, months)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}
