package patient

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	apperrors "github.com/clinicore/clinic-api/pkg/errors"
	"github.com/clinicore/clinic-api/pkg/logger"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

type Service struct {
	repo   repository.PatientRepository
	logger *logger.Logger
}

func NewService(repo repository.PatientRepository, logger *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.WithComponent("patient_service"),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		NationalID:       optional(req.NationalID),
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		DateOfBirth:      optional(req.DateOfBirth),
		Gender:           req.Gender,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("a patient with this national id already exists")
		}
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("patient registered", "patient_id", patient.ID, "name", patient.Name)
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

// List returns all patients, or only those matching the search term
// against name, phone or national id when one is given.
func (s *Service) List(ctx context.Context, search string) ([]*model.Patient, error) {
	var (
		patients []*model.Patient
		err      error
	)
	if search = strings.TrimSpace(search); search != "" {
		patients, err = s.repo.Search(ctx, search)
	} else {
		patients, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return patients, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patient.NationalID = optional(req.NationalID)
	patient.Name = req.Name
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.DateOfBirth = optional(req.DateOfBirth)
	patient.Gender = req.Gender
	patient.Address = req.Address
	patient.EmergencyContact = req.EmergencyContact
	patient.BloodType = req.BloodType
	patient.Allergies = req.Allergies

	if err := s.repo.Update(ctx, patient); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("a patient with this national id already exists")
		}
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	s.logger.Info("patient deleted", "patient_id", id)
	return nil
}

// Summaries returns every patient joined with their record history,
// optionally narrowed by a name or phone search.
func (s *Service) Summaries(ctx context.Context, search string) ([]*model.PatientSummary, error) {
	summaries, err := s.repo.Summaries(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return summaries, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
