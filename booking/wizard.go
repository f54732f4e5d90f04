package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"go.uber.org/zap"
)

// State is the wizard's position in the booking flow. Every transition
// invalidates everything downstream of it.
type State int

const (
	StateIdle State = iota
	StateServiceSelected
	StateDateSelected
	StateSlotSelected
	StateReadyToConfirm
)

var (
	// ErrSuperseded means a newer selection was made while this query was in
	// flight; its response was discarded and the newer call owns the outcome.
	ErrSuperseded = errors.New("booking: selection superseded by a newer one")

	// ErrNoChange means a reschedule re-picked the appointment's current
	// start time. No request is sent; callers surface it as information, not
	// as an error.
	ErrNoChange = errors.New("booking: proposed time matches the current appointment")
)

// AvailabilityAPI is the slice of the backend client the wizard drives.
type AvailabilityAPI interface {
	FetchAvailableSlots(ctx context.Context, serviceID, date string) ([]string, error)
	FetchAvailableTechnicians(ctx context.Context, serviceID string, startTime time.Time) ([]models.Technician, error)
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Appointment, error)
	RescheduleBooking(ctx context.Context, appointmentID string, newStartTime time.Time) (*models.Appointment, error)
}

// Draft is the wizard's in-memory selection. It lives only while the flow is
// open; nothing here is persisted.
type Draft struct {
	Service              models.Service
	Date                 string // YYYY-MM-DD
	AvailableSlots       []string
	SelectedSlot         string // HH:MM
	AvailableTechnicians []models.Technician
	SelectedTechnician   *models.Technician // nil = auto-assign
}

// Wizard drives the date → slot → technician → confirm flow. Slot and
// technician queries each carry a generation number; a response whose
// generation is no longer current is dropped, so a stale answer can never
// overwrite state that belongs to a newer selection.
type Wizard struct {
	api    AvailabilityAPI
	logger *zap.Logger
	filter SlotFilter
	loc    *time.Location

	mu         sync.Mutex
	state      State
	draft      Draft
	reschedule *models.Appointment
	slotGen    uint64
	techGen    uint64
}

// NewWizard opens a fresh booking flow. The standard slot policy is applied
// to every loaded slot list.
func NewWizard(api AvailabilityAPI, logger *zap.Logger) *Wizard {
	return &Wizard{
		api:    api,
		logger: logger,
		filter: StandardSlotPolicy,
		loc:    time.Local,
	}
}

// NewRescheduleWizard opens the flow for moving an existing appointment. The
// service is fixed from the appointment and, matching the established product
// behavior, no slot filter is applied in this flow.
func NewRescheduleWizard(api AvailabilityAPI, logger *zap.Logger, appt models.Appointment) *Wizard {
	w := &Wizard{
		api:    api,
		logger: logger,
		loc:    time.Local,
	}
	w.reschedule = &appt
	w.draft.Service = models.Service{ID: appt.ServiceID}
	w.state = StateServiceSelected
	return w
}

// State returns the wizard's current position.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Draft returns a copy of the current selections.
func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft
	d.AvailableSlots = append([]string(nil), w.draft.AvailableSlots...)
	d.AvailableTechnicians = append([]models.Technician(nil), w.draft.AvailableTechnicians...)
	return d
}

// SelectService fixes the service and resets everything downstream.
func (w *Wizard) SelectService(svc models.Service) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.reschedule != nil {
		return fmt.Errorf("booking: the service of an existing appointment cannot change")
	}
	w.draft = Draft{Service: svc}
	w.state = StateServiceSelected
	return nil
}

// SelectDate picks a calendar date and loads the slots for it. Slots,
// selected slot and technician state from any earlier date are cleared first,
// and a response for a date the user has already moved on from is discarded.
func (w *Wizard) SelectDate(ctx context.Context, date string) error {
	w.mu.Lock()
	if w.state < StateServiceSelected {
		w.mu.Unlock()
		return fmt.Errorf("booking: select a service before a date")
	}
	w.draft.Date = date
	w.draft.AvailableSlots = nil
	w.draft.SelectedSlot = ""
	w.draft.AvailableTechnicians = nil
	w.draft.SelectedTechnician = nil
	w.state = StateDateSelected
	w.slotGen++
	gen := w.slotGen
	serviceID := w.draft.Service.ID
	w.mu.Unlock()

	slots, err := w.api.FetchAvailableSlots(ctx, serviceID, date)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.slotGen {
		w.logger.Debug("booking: discarding stale slot response", zap.String("date", date))
		return ErrSuperseded
	}
	if err != nil {
		// The cleared slot list stands; the user sees empty, never stale.
		return fmt.Errorf("load slots for %s: %w", date, err)
	}
	if w.filter != nil {
		slots = w.filter(slots)
	}
	w.draft.AvailableSlots = slots
	return nil
}

// SelectSlot picks a time of day from the loaded slots and queries which
// technicians can take it. Technician state from any earlier slot is cleared
// first; date and slot list stay put.
func (w *Wizard) SelectSlot(ctx context.Context, slot string) error {
	w.mu.Lock()
	if w.state < StateDateSelected {
		w.mu.Unlock()
		return fmt.Errorf("booking: select a date before a slot")
	}
	if !contains(w.draft.AvailableSlots, slot) {
		w.mu.Unlock()
		return fmt.Errorf("booking: slot %s is not among the available slots", slot)
	}
	w.draft.SelectedSlot = slot
	w.draft.AvailableTechnicians = nil
	w.draft.SelectedTechnician = nil
	w.state = StateSlotSelected
	w.techGen++
	gen := w.techGen
	serviceID := w.draft.Service.ID
	start, err := w.startTimeLocked()
	w.mu.Unlock()
	if err != nil {
		return err
	}

	technicians, err := w.api.FetchAvailableTechnicians(ctx, serviceID, start)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.techGen {
		w.logger.Debug("booking: discarding stale technician response", zap.String("slot", slot))
		return ErrSuperseded
	}
	if err != nil {
		return fmt.Errorf("load technicians for %s: %w", slot, err)
	}
	w.draft.AvailableTechnicians = technicians
	return nil
}

// SelectTechnician picks one of the offered technicians and arms the confirm
// step.
func (w *Wizard) SelectTechnician(technicianID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state < StateSlotSelected {
		return fmt.Errorf("booking: select a slot before a technician")
	}
	for i := range w.draft.AvailableTechnicians {
		if w.draft.AvailableTechnicians[i].ID == technicianID {
			tech := w.draft.AvailableTechnicians[i]
			w.draft.SelectedTechnician = &tech
			w.state = StateReadyToConfirm
			return nil
		}
	}
	return fmt.Errorf("booking: technician %s is not among the available technicians", technicianID)
}

// AutoAssign leaves the technician choice to the backend. A valid terminal
// choice, equivalent to no technician selected.
func (w *Wizard) AutoAssign() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state < StateSlotSelected {
		return fmt.Errorf("booking: select a slot before confirming")
	}
	w.draft.SelectedTechnician = nil
	w.state = StateReadyToConfirm
	return nil
}

// Confirm submits the booking. For a reschedule that re-picked the current
// start time it returns ErrNoChange without touching the network. On success
// the draft is discarded; the caller navigates to the confirmation view.
func (w *Wizard) Confirm(ctx context.Context) (*models.Appointment, error) {
	w.mu.Lock()
	if w.state != StateReadyToConfirm {
		w.mu.Unlock()
		return nil, fmt.Errorf("booking: flow is not ready to confirm")
	}
	start, err := w.startTimeLocked()
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	resched := w.reschedule
	var technicianID *string
	if w.draft.SelectedTechnician != nil {
		id := w.draft.SelectedTechnician.ID
		technicianID = &id
	}
	serviceID := w.draft.Service.ID
	w.mu.Unlock()

	if resched != nil {
		if start.Equal(resched.StartTime) {
			return nil, ErrNoChange
		}
		appt, err := w.api.RescheduleBooking(ctx, resched.ID, start)
		if err != nil {
			return nil, err
		}
		w.Reset()
		return appt, nil
	}

	appt, err := w.api.CreateBooking(ctx, models.BookingInput{
		ServiceID:    serviceID,
		TechnicianID: technicianID,
		StartTime:    start,
	})
	if err != nil {
		return nil, err
	}
	w.Reset()
	return appt, nil
}

// Reset discards the draft, as when the booking modal closes.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	service := w.draft.Service
	w.draft = Draft{}
	w.state = StateIdle
	if w.reschedule != nil {
		w.draft.Service = service
		w.state = StateServiceSelected
	}
}

// startTimeLocked combines the drafted date and slot into a wall-clock start.
func (w *Wizard) startTimeLocked() (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", w.draft.Date+" "+w.draft.SelectedSlot, w.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("booking: cannot combine date %q and slot %q: %w", w.draft.Date, w.draft.SelectedSlot, err)
	}
	return start, nil
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
