package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

type billRepository struct {
	BaseRepository
}

func NewBillRepository(db *sqlx.DB) repository.BillRepository {
	return &billRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	query := `
		INSERT INTO bills (patient_id, appointment_id, amount, paid_amount, payment_status,
			services, payment_method, bill_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	bill.CreatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, query,
		bill.PatientID,
		bill.AppointmentID,
		bill.Amount,
		bill.PaidAmount,
		bill.PaymentStatus,
		bill.Services,
		bill.PaymentMethod,
		bill.BillDate,
		bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	bill.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read bill id: %w", err)
	}
	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id int64) (*model.Bill, error) {
	query := `SELECT * FROM bills WHERE id = ?`
	var bill model.Bill
	if err := r.db.GetContext(ctx, &bill, query, id); err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context, filters model.BillFilters) ([]*model.BillRow, error) {
	query := `
		SELECT b.id, p.name AS patient_name, b.amount, b.paid_amount, b.payment_status,
			b.bill_date, COALESCE(b.services, '') AS services,
			COALESCE(b.payment_method, '') AS payment_method
		FROM bills b
		JOIN patients p ON p.id = b.patient_id
		WHERE 1=1
	`
	args := []interface{}{}
	if filters.StartDate != "" {
		query += " AND b.bill_date >= ?"
		args = append(args, filters.StartDate)
	}
	if filters.EndDate != "" {
		query += " AND b.bill_date <= ?"
		args = append(args, filters.EndDate)
	}
	if filters.Status != "" {
		query += " AND b.payment_status = ?"
		args = append(args, filters.Status)
	}
	query += " ORDER BY b.bill_date DESC"

	var rows []*model.BillRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return rows, nil
}

func (r *billRepository) UpdatePayment(ctx context.Context, id int64, paidAmount float64, status, method string) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `UPDATE bills SET paid_amount = ?, payment_status = ?, payment_method = ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query, paidAmount, status, method, id); err != nil {
			return fmt.Errorf("failed to update bill payment: %w", err)
		}
		return nil
	})
}

func (r *billRepository) FinancialStats(ctx context.Context) (*model.FinancialStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_bills,
			COALESCE(SUM(amount), 0) AS total_revenue,
			COALESCE(SUM(paid_amount), 0) AS collected_revenue,
			COALESCE(SUM(amount - paid_amount), 0) AS pending_revenue
		FROM bills
	`
	var stats model.FinancialStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get financial stats: %w", err)
	}
	return &stats, nil
}

func (r *billRepository) MonthlyRevenue(ctx context.Context, months int) ([]model.MonthlyRevenue, error) {
	query := `
		SELECT strftime('%Y-%m', bill_date) AS month,
			COALESCE(SUM(amount), 0) AS total,
			COALESCE(SUM(paid_amount), 0) AS collected
		FROM bills
		GROUP BY month
		ORDER BY month DESC
		LIMIT ?
	`
	var rows []model.MonthlyRevenue
	if err := r.db.SelectContext(ctx, &rows, query, months); err != nil {
		return nil, fmt.Errorf("failed to get monthly revenue: %w", err)
	}
	return rows, nil
}

func (r *billRepository) PaymentMethods(ctx context.Context) ([]model.PaymentMethodStat, error) {
	query := `
		SELECT payment_method AS method, COUNT(*) AS count, COALESCE(SUM(paid_amount), 0) AS total
		FROM bills
		WHERE payment_method IS NOT NULL AND payment_method != ''
		GROUP BY payment_method
		ORDER BY total DESC
	`
	var rows []model.PaymentMethodStat
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get payment method stats: %w", err)
	}
	return rows, nil
}
