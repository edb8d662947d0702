package model

import "time"

// MedicalRecord is an append-only visit note. Records are never edited or
// deleted once written.
type MedicalRecord struct {
	ID           int64     `json:"id" db:"id"`
	PatientID    int64     `json:"patient_id" db:"patient_id"`
	VisitDate    string    `json:"visit_date" db:"visit_date"`
	Diagnosis    string    `json:"diagnosis" db:"diagnosis"`
	Prescription string    `json:"prescription" db:"prescription"`
	Symptoms     string    `json:"symptoms" db:"symptoms"`
	Tests        string    `json:"tests" db:"tests_ordered"`
	Notes        string    `json:"notes" db:"notes"`
	DoctorName   string    `json:"doctor_name" db:"doctor_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateMedicalRecordRequest struct {
	PatientID    int64  `json:"patient_id" binding:"required"`
	VisitDate    string `json:"visit_date" binding:"required,datetime=2006-01-02"`
	DoctorName   string `json:"doctor_name" binding:"required"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Symptoms     string `json:"symptoms"`
	Tests        string `json:"tests"`
	Notes        string `json:"notes"`
}

// DiagnosisCount is one entry of the most-common-diagnoses list.
type DiagnosisCount struct {
	Diagnosis string `json:"diagnosis" db:"diagnosis"`
	Count     int    `json:"count" db:"count"`
}

// MonthCount buckets rows by calendar month ("2006-01").
type MonthCount struct {
	Month string `json:"month" db:"month"`
	Count int    `json:"count" db:"count"`
}

// MedicalRecordStats backs the medical statistics tab.
type MedicalRecordStats struct {
	TotalRecords    int `json:"total_records" db:"total_records"`
	UniquePatients  int `json:"unique_patients" db:"unique_patients"`
	VisitsThisMonth int `json:"visits_this_month" db:"visits_this_month"`
	VisitsToday     int `json:"visits_today" db:"visits_today"`
}
