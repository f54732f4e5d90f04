package models

// Absence request review states.
const (
	AbsencePending  = "PENDING"
	AbsenceApproved = "APPROVED"
	AbsenceRejected = "REJECTED"
)

// AbsenceRequest is a technician's time-off request awaiting admin review.
type AbsenceRequest struct {
	ID           string `json:"id"`
	TechnicianID string `json:"technicianId"`
	StartDate    string `json:"startDate"` // YYYY-MM-DD
	EndDate      string `json:"endDate"`   // YYYY-MM-DD
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
}

// AbsenceInput is the payload a technician submits.
type AbsenceInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason,omitempty"`
}
