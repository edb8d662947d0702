package model

import "time"

// Patient is a registration record. History accrues against it through
// appointments, medical records and bills.
type Patient struct {
	ID               int64     `json:"id" db:"id"`
	NationalID       *string   `json:"national_id" db:"national_id"`
	Name             string    `json:"name" db:"name"`
	Phone            string    `json:"phone" db:"phone"`
	Email            string    `json:"email" db:"email"`
	DateOfBirth      *string   `json:"date_of_birth" db:"date_of_birth"`
	Gender           string    `json:"gender" db:"gender"`
	Address          string    `json:"address" db:"address"`
	EmergencyContact string    `json:"emergency_contact" db:"emergency_contact"`
	BloodType        string    `json:"blood_type" db:"blood_type"`
	Allergies        string    `json:"allergies" db:"allergies"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

type CreatePatientRequest struct {
	NationalID       string `json:"national_id"`
	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	DateOfBirth      string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender" binding:"omitempty,oneof=Male Female"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
	BloodType        string `json:"blood_type" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies        string `json:"allergies"`
}

// PatientSummary is a patient joined with their medical-record history,
// driving the records overview page.
type PatientSummary struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Phone        string  `json:"phone" db:"phone"`
	DateOfBirth  *string `json:"date_of_birth" db:"date_of_birth"`
	Gender       string  `json:"gender" db:"gender"`
	BloodType    string  `json:"blood_type" db:"blood_type"`
	RecordsCount int     `json:"records_count" db:"records_count"`
	LastVisit    *string `json:"last_visit" db:"last_visit"`
}
