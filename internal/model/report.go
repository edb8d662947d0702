package model

// DashboardStats is the headline metric set for the overview page.
type DashboardStats struct {
	TotalPatients     int     `json:"total_patients" db:"total_patients"`
	NewPatientsToday  int     `json:"new_patients_today" db:"new_patients_today"`
	TodayAppointments int     `json:"today_appointments" db:"today_appointments"`
	TotalRevenue      float64 `json:"total_revenue" db:"total_revenue"`
	UnpaidBills       int     `json:"unpaid_bills" db:"unpaid_bills"`
	OverdueBills      int     `json:"overdue_bills" db:"overdue_bills"`
}

// ReportRange bounds a report query to an inclusive date range. Either
// side may be omitted; the service fills in a trailing 30-day window.
type ReportRange struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// PeriodStats summarizes activity over a reporting window with a
// growth figure relative to the previous period.
type PeriodStats struct {
	NewPatients    int     `json:"new_patients"`
	PatientGrowth  float64 `json:"patient_growth"`
	Appointments   int     `json:"appointments"`
	ApptGrowth     float64 `json:"appointment_growth"`
	Revenue        float64 `json:"revenue"`
	RevenueGrowth  float64 `json:"revenue_growth"`
	MedicalRecords int     `json:"medical_records"`
	RecordGrowth   float64 `json:"record_growth"`
}

// RevenuePoint is one day of collected revenue for the trend chart.
type RevenuePoint struct {
	Date    string  `json:"date" db:"date"`
	Revenue float64 `json:"revenue" db:"revenue"`
}

// StatusCount is a generic label/count pair used for status,
// type and role distributions.
type StatusCount struct {
	Label string `json:"label" db:"label"`
	Count int    `json:"count" db:"count"`
}

// AppointmentReport summarizes booking outcomes for the reports page.
// Rates are fractions of all appointments ever booked; AveragePerDay
// divides by the number of distinct booked dates.
type AppointmentReport struct {
	ByStatus         []StatusCount `json:"by_status"`
	ByType           []StatusCount `json:"by_type"`
	CompletionRate   float64       `json:"completion_rate"`
	CancellationRate float64       `json:"cancellation_rate"`
	AveragePerDay    float64       `json:"average_per_day"`
}

// GenderCount is one slice of the gender distribution.
type GenderCount struct {
	Gender string `json:"gender" db:"gender"`
	Count  int    `json:"count" db:"count"`
}

// AgeBand is one bucket of the patient age distribution.
type AgeBand struct {
	Band  string `json:"band" db:"band"`
	Count int    `json:"count" db:"count"`
}

// PatientReportStats backs the patient analytics tab.
type PatientReportStats struct {
	TotalPatients   int `json:"total_patients" db:"total_patients"`
	NewThisMonth    int `json:"new_this_month" db:"new_this_month"`
	ActivePatients  int `json:"active_patients" db:"active_patients"`
	RegisteredToday int `json:"registered_today" db:"registered_today"`
}
