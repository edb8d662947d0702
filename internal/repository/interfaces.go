package repository

import (
	"context"

	"github.com/clinicore/clinic-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetActive(ctx context.Context, id int64, active bool) error
	Count(ctx context.Context) (int, error)
	RoleDistribution(ctx context.Context) ([]model.StatusCount, error)
	Stats(ctx context.Context) (*model.UserStats, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	GetByID(ctx context.Context, id int64) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Search(ctx context.Context, term string) ([]*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id int64) error
	Summaries(ctx context.Context, search string) ([]*model.PatientSummary, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *model.Appointment) error
	GetByID(ctx context.Context, id int64) (*model.Appointment, error)
	List(ctx context.Context, filters model.AppointmentFilters) ([]*model.AppointmentRow, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountConflicts(ctx context.Context, doctor, date, timeOfDay string) (int, error)
	ListDoctors(ctx context.Context) ([]string, error)
	Stats(ctx context.Context, today string) (*model.AppointmentStats, error)
	StatusDistribution(ctx context.Context) ([]model.StatusCount, error)
	TypeDistribution(ctx context.Context) ([]model.StatusCount, error)
	ActiveDays(ctx context.Context) (int, error)
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) error
	ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error)
	Stats(ctx context.Context, today string) (*model.MedicalRecordStats, error)
	CommonDiagnoses(ctx context.Context, limit int) ([]model.DiagnosisCount, error)
	MonthlyTrend(ctx context.Context, months int) ([]model.MonthCount, error)
}

type BillRepository interface {
	Create(ctx context.Context, bill *model.Bill) error
	GetByID(ctx context.Context, id int64) (*model.Bill, error)
	List(ctx context.Context, filters model.BillFilters) ([]*model.BillRow, error)
	UpdatePayment(ctx context.Context, id int64, paidAmount float64, status, method string) error
	FinancialStats(ctx context.Context) (*model.FinancialStats, error)
	MonthlyRevenue(ctx context.Context, months int) ([]model.MonthlyRevenue, error)
	PaymentMethods(ctx context.Context) ([]model.PaymentMethodStat, error)
}

type ReportRepository interface {
	DashboardStats(ctx context.Context, today string) (*model.DashboardStats, error)
	CountPatientsBetween(ctx context.Context, start, end string) (int, error)
	CountAppointmentsBetween(ctx context.Context, start, end string) (int, error)
	RevenueBetween(ctx context.Context, start, end string) (float64, error)
	CountRecordsBetween(ctx context.Context, start, end string) (int, error)
	RevenueTrend(ctx context.Context, start, end string) ([]model.RevenuePoint, error)
	GenderDistribution(ctx context.Context) ([]model.GenderCount, error)
	AgeDistribution(ctx context.Context) ([]model.AgeBand, error)
	PatientStats(ctx context.Context, today string) (*model.PatientReportStats, error)
}
