package models

import "time"

// Appointment statuses as the backend reports them.
const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentCancelled = "CANCELLED"
	AppointmentCompleted = "COMPLETED"
)

// Appointment is a confirmed booking.
type Appointment struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"serviceId"`
	CustomerID   string    `json:"customerId"`
	TechnicianID string    `json:"technicianId,omitempty"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime,omitempty"`
	Status       string    `json:"status"`
}

// BookingInput is the payload sent to create an appointment. A nil
// TechnicianID asks the backend to auto-assign.
type BookingInput struct {
	ServiceID    string    `json:"serviceId"`
	TechnicianID *string   `json:"technicianId,omitempty"`
	StartTime    time.Time `json:"startTime"`
}

// RescheduleInput moves an existing appointment to a new start time.
type RescheduleInput struct {
	NewStartTime time.Time `json:"newStartTime"`
}

// AvailableSlotsResponse lists bookable times of day, ordered, as "HH:MM".
type AvailableSlotsResponse struct {
	Slots []string `json:"slots"`
}

// AvailableTechniciansResponse lists technicians free at a given start time.
type AvailableTechniciansResponse struct {
	Technicians []Technician `json:"technicians"`
}
