package billing

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

const monthlyRevenueMonths = 6

type Service struct {
	repo     repository.BillRepository
	patients repository.PatientRepository
	logger   *logger.Logger
}

func NewService(repo repository.BillRepository, patients repository.PatientRepository, logger *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		logger:   logger.WithComponent("billing_service"),
	}
}

// Create issues a bill. The payment status is always derived from the
// amounts rather than accepted from the caller.
func (s *Service) Create(ctx context.Context, req *model.CreateBillRequest) (*model.Bill, error) {
	if _, err := s.patients.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.BadRequest("patient does not exist", err)
		}
		return nil, apperrors.Internal(err)
	}
	if req.PaidAmount > req.Amount {
		return nil, apperrors.BadRequest("paid amount cannot exceed the bill amount", nil)
	}

	billDate := req.BillDate
	if billDate == "" {
		billDate = time.Now().Format("2006-01-02")
	}

	bill := &model.Bill{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		PaidAmount:    req.PaidAmount,
		PaymentStatus: deriveStatus(req.Amount, req.PaidAmount),
		Services:      req.Services,
		PaymentMethod: req.PaymentMethod,
		BillDate:      billDate,
	}
	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("bill created",
		"bill_id", bill.ID,
		"patient_id", bill.PatientID,
		"amount", bill.Amount,
		"status", bill.PaymentStatus,
	)
	return bill, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Bill, error) {
	bill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("bill", err)
		}
		return nil, apperrors.Internal(err)
	}
	return bill, nil
}

// List returns the filtered bills along with their running totals.
func (s *Service) List(ctx context.Context, filters model.BillFilters) ([]*model.BillRow, *model.BillListTotals, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}

	totals := &model.BillListTotals{}
	for _, row := range rows {
		totals.TotalAmount += row.Amount
		totals.TotalPaid += row.PaidAmount
	}
	totals.Outstanding = totals.TotalAmount - totals.TotalPaid
	return rows, totals, nil
}

// RecordPayment applies a payment to a bill. The payment must be
// positive and must not exceed the amount still outstanding.
func (s *Service) RecordPayment(ctx context.Context, id int64, req *model.RecordPaymentRequest) (*model.Bill, error) {
	bill, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill.PaymentStatus == model.PaymentStatusPaid {
		return nil, apperrors.BadRequest("bill is already fully paid", nil)
	}
	outstanding := bill.Outstanding()
	if req.Amount <= 0 {
		return nil, apperrors.BadRequest("payment amount must be positive", nil)
	}
	if req.Amount > outstanding {
		return nil, apperrors.BadRequest("payment exceeds the outstanding balance", nil)
	}

	newPaid := bill.PaidAmount + req.Amount
	status := deriveStatus(bill.Amount, newPaid)

	if err := s.repo.UpdatePayment(ctx, id, newPaid, status, req.PaymentMethod); err != nil {
		return nil, apperrors.Internal(err)
	}

	bill.PaidAmount = newPaid
	bill.PaymentStatus = status
	bill.PaymentMethod = req.PaymentMethod

	s.logger.Info("payment recorded",
		"bill_id", id,
		"payment", req.Amount,
		"paid_total", newPaid,
		"status", status,
	)
	return bill, nil
}

func (s *Service) FinancialStats(ctx context.Context) (*model.FinancialStats, error) {
	stats, err := s.repo.FinancialStats(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return stats, nil
}

func (s *Service) MonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error) {
	rows, err := s.repo.MonthlyRevenue(ctx, monthlyRevenueMonths)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}

func (s *Service) PaymentMethods(ctx context.Context) ([]model.PaymentMethodStat, error) {
	rows, err := s.repo.PaymentMethods(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}

func deriveStatus(amount, paid float64) string {
	switch {
	case paid >= amount:
		return model.PaymentStatusPaid
	case paid > 0:
		return model.PaymentStatusPartial
	default:
		return model.PaymentStatusUnpaid
	}
}
