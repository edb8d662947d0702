package model

import "time"

// Payment statuses
const (
	PaymentStatusUnpaid  = "Unpaid"
	PaymentStatusPartial = "Partial"
	PaymentStatusPaid    = "Paid"
)

// Payment methods
const (
	PaymentMethodCash         = "Cash"
	PaymentMethodCreditCard   = "Credit Card"
	PaymentMethodBankTransfer = "Bank Transfer"
	PaymentMethodCheck        = "Check"
)

type Bill struct {
	ID            int64     `json:"id" db:"id"`
	PatientID     int64     `json:"patient_id" db:"patient_id"`
	AppointmentID *int64    `json:"appointment_id" db:"appointment_id"`
	Amount        float64   `json:"amount" db:"amount"`
	PaidAmount    float64   `json:"paid_amount" db:"paid_amount"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	Services      string    `json:"services" db:"services"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	BillDate      string    `json:"bill_date" db:"bill_date"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Outstanding is the amount still owed on the bill.
func (b *Bill) Outstanding() float64 {
	return b.Amount - b.PaidAmount
}

type CreateBillRequest struct {
	PatientID     int64   `json:"patient_id" binding:"required"`
	AppointmentID *int64  `json:"appointment_id"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaidAmount    float64 `json:"paid_amount" binding:"gte=0"`
	Services      string  `json:"services" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=Cash 'Credit Card' 'Bank Transfer' Check"`
	BillDate      string  `json:"bill_date" binding:"omitempty,datetime=2006-01-02"`
}

type RecordPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=Cash 'Credit Card' 'Bank Transfer' Check"`
}

// BillRow is a bill joined with the patient it belongs to.
type BillRow struct {
	ID            int64   `json:"id" db:"id"`
	PatientName   string  `json:"patient_name" db:"patient_name"`
	Amount        float64 `json:"amount" db:"amount"`
	PaidAmount    float64 `json:"paid_amount" db:"paid_amount"`
	PaymentStatus string  `json:"payment_status" db:"payment_status"`
	BillDate      string  `json:"bill_date" db:"bill_date"`
	Services      string  `json:"services" db:"services"`
	PaymentMethod string  `json:"payment_method" db:"payment_method"`
}

type BillFilters struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status    string `form:"status" binding:"omitempty,oneof=Unpaid Partial Paid"`
}

// BillListTotals accompanies a filtered bill listing.
type BillListTotals struct {
	TotalAmount float64 `json:"total_amount"`
	TotalPaid   float64 `json:"total_paid"`
	Outstanding float64 `json:"outstanding"`
}

// FinancialStats backs the financial statistics tab.
type FinancialStats struct {
	TotalBills       int     `json:"total_bills" db:"total_bills"`
	TotalRevenue     float64 `json:"total_revenue" db:"total_revenue"`
	CollectedRevenue float64 `json:"collected_revenue" db:"collected_revenue"`
	PendingRevenue   float64 `json:"pending_revenue" db:"pending_revenue"`
}

// MonthlyRevenue is one month bucket of billed vs collected amounts.
type MonthlyRevenue struct {
	Month     string  `json:"month" db:"month"`
	Total     float64 `json:"total" db:"total"`
	Collected float64 `json:"collected" db:"collected"`
}

// PaymentMethodStat is one row of the payment-method breakdown.
type PaymentMethodStat struct {
	Method string  `json:"method" db:"method"`
	Count  int     `json:"count" db:"count"`
	Total  float64 `json:"total" db:"total"`
}
