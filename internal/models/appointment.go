package models

// AppointmentStatus is the lifecycle label owned by the backend
type AppointmentStatus string

const (
	StatusPlanned   AppointmentStatus = "PLANNED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// AppointmentRequest represents the body of POST /api/appointments
type AppointmentRequest struct {
	DateHeure string `json:"dateHeure"` // e.g. 2026-03-02T09:00:00
	Motif     string `json:"motif"`
}

// AppointmentResponse is an appointment as returned by the backend. Read-only.
type AppointmentResponse struct {
	ID               int64             `json:"id"`
	DateHeure        string            `json:"dateHeure"` // backend format: 2006-01-02 15:04
	Motif            string            `json:"motif"`
	PatientNom       string            `json:"patientNom"`
	PatientPrenom    string            `json:"patientPrenom"`
	Status           AppointmentStatus `json:"status"`
	CanPatientCancel bool              `json:"canPatientCancel"`
}
