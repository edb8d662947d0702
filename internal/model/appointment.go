package model

import "time"

// Appointment statuses
const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
	AppointmentStatusNoShow    = "No Show"
)

// Appointment types
const (
	AppointmentTypeRegular   = "Regular"
	AppointmentTypeFollowUp  = "Follow-up"
	AppointmentTypeEmergency = "Emergency"
	AppointmentTypeCheckUp   = "Check-up"
)

type Appointment struct {
	ID        int64 `json:"id" db:"id"`
	PatientID int64 `json:"patient_id" db:"patient_id"`
	// Doctor is free text, not a staff account reference.
	DoctorName string    `json:"doctor_name" db:"doctor_name"`
	Date       string    `json:"appointment_date" db:"appointment_date"`
	Time       string    `json:"appointment_time" db:"appointment_time"`
	Status     string    `json:"status" db:"status"`
	Type       string    `json:"type" db:"appointment_type"`
	Notes      string    `json:"notes" db:"notes"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type CreateAppointmentRequest struct {
	PatientID  int64  `json:"patient_id" binding:"required"`
	DoctorName string `json:"doctor_name" binding:"required"`
	Date       string `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	Time       string `json:"appointment_time" binding:"required,datetime=15:04"`
	Status     string `json:"status" binding:"omitempty,oneof=Scheduled Completed Cancelled 'No Show'"`
	Type       string `json:"type" binding:"omitempty,oneof=Regular Follow-up Emergency Check-up"`
	Notes      string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Scheduled Completed Cancelled 'No Show'"`
}

// AppointmentRow is an appointment joined with the patient it belongs to.
type AppointmentRow struct {
	ID           int64  `json:"id" db:"id"`
	PatientID    int64  `json:"patient_id" db:"patient_id"`
	PatientName  string `json:"patient_name" db:"patient_name"`
	PatientPhone string `json:"patient_phone" db:"patient_phone"`
	DoctorName   string `json:"doctor_name" db:"doctor_name"`
	Date         string `json:"appointment_date" db:"appointment_date"`
	Time         string `json:"appointment_time" db:"appointment_time"`
	Status       string `json:"status" db:"status"`
	Type         string `json:"type" db:"appointment_type"`
	Notes        string `json:"notes" db:"notes"`
}

type AppointmentFilters struct {
	Date   string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Status string `form:"status" binding:"omitempty,oneof=Scheduled Completed Cancelled 'No Show'"`
	Doctor string `form:"doctor"`
}

// AppointmentStats backs the appointments statistics tab.
type AppointmentStats struct {
	Total     int `json:"total" db:"total"`
	Today     int `json:"today" db:"today"`
	Completed int `json:"completed" db:"completed"`
	Upcoming  int `json:"upcoming" db:"upcoming"`
}
