package api

import (
	"context"
	"fmt"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
)

// FetchAvailableSlots returns the bookable times of day, in backend order,
// for a service on a calendar date (YYYY-MM-DD).
func (c *Client) FetchAvailableSlots(ctx context.Context, serviceID, date string) ([]string, error) {
	var out models.AvailableSlotsResponse
	_, err := c.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"serviceId": serviceID,
			"date":      date,
		}).
		SetResult(&out).
		Get("/bookings/slots")
	if err != nil {
		return nil, fmt.Errorf("fetch available slots: %w", err)
	}
	return out.Slots, nil
}

// FetchAvailableTechnicians returns the technicians free to take a service at
// the given start time.
func (c *Client) FetchAvailableTechnicians(ctx context.Context, serviceID string, startTime time.Time) ([]models.Technician, error) {
	var out models.AvailableTechniciansResponse
	_, err := c.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"serviceId": serviceID,
			"startTime": startTime.Format(time.RFC3339),
		}).
		SetResult(&out).
		Get("/bookings/technicians")
	if err != nil {
		return nil, fmt.Errorf("fetch available technicians: %w", err)
	}
	return out.Technicians, nil
}

// CreateBooking submits a new appointment. Scheduling conflicts are the
// backend's call; a rejection comes back as an APIError.
func (c *Client) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Appointment, error) {
	var out models.Appointment
	_, err := c.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&out).
		Post("/appointments")
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &out, nil
}

// RescheduleBooking moves an existing appointment to a new start time.
func (c *Client) RescheduleBooking(ctx context.Context, appointmentID string, newStartTime time.Time) (*models.Appointment, error) {
	var out models.Appointment
	_, err := c.R().
		SetContext(ctx).
		SetBody(models.RescheduleInput{NewStartTime: newStartTime}).
		SetResult(&out).
		Put("/appointments/" + appointmentID + "/reschedule")
	if err != nil {
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}
	return &out, nil
}

// CancelBooking cancels an appointment.
func (c *Client) CancelBooking(ctx context.Context, appointmentID string) error {
	_, err := c.R().
		SetContext(ctx).
		Delete("/appointments/" + appointmentID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	return nil
}

// ListMyAppointments returns the signed-in customer's appointments.
func (c *Client) ListMyAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	_, err := c.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/appointments/me")
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return out, nil
}
