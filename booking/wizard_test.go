package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"go.uber.org/zap"
)

type fakeAPI struct {
	mu sync.Mutex

	slotsFn   func(serviceID, date string) ([]string, error)
	techsFn   func(serviceID string, start time.Time) ([]models.Technician, error)
	createFn  func(input models.BookingInput) (*models.Appointment, error)
	reschedFn func(id string, start time.Time) (*models.Appointment, error)

	createCalls   int
	reschedCalls  int
	lastCreateReq models.BookingInput
}

func (f *fakeAPI) FetchAvailableSlots(_ context.Context, serviceID, date string) ([]string, error) {
	if f.slotsFn != nil {
		return f.slotsFn(serviceID, date)
	}
	return []string{"09:00", "10:00"}, nil
}

func (f *fakeAPI) FetchAvailableTechnicians(_ context.Context, serviceID string, start time.Time) ([]models.Technician, error) {
	if f.techsFn != nil {
		return f.techsFn(serviceID, start)
	}
	return []models.Technician{{ID: "t-1", FullName: "Mai"}}, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, input models.BookingInput) (*models.Appointment, error) {
	f.mu.Lock()
	f.createCalls++
	f.lastCreateReq = input
	f.mu.Unlock()
	if f.createFn != nil {
		return f.createFn(input)
	}
	return &models.Appointment{ID: "a-1", ServiceID: input.ServiceID, StartTime: input.StartTime}, nil
}

func (f *fakeAPI) RescheduleBooking(_ context.Context, id string, start time.Time) (*models.Appointment, error) {
	f.mu.Lock()
	f.reschedCalls++
	f.mu.Unlock()
	if f.reschedFn != nil {
		return f.reschedFn(id, start)
	}
	return &models.Appointment{ID: id, StartTime: start}, nil
}

func newReadyWizard(t *testing.T, api *fakeAPI) *Wizard {
	t.Helper()
	w := NewWizard(api, zap.NewNop())
	if err := w.SelectService(models.Service{ID: "svc-1"}); err != nil {
		t.Fatalf("SelectService() error: %v", err)
	}
	return w
}

func TestSelectDateRequiresService(t *testing.T) {
	w := NewWizard(&fakeAPI{}, zap.NewNop())
	if err := w.SelectDate(context.Background(), "2026-09-01"); err == nil {
		t.Fatalf("expected error selecting a date before a service")
	}
}

func TestDateChangeInvalidatesDownstreamState(t *testing.T) {
	api := &fakeAPI{}
	w := newReadyWizard(t, api)
	ctx := context.Background()

	if err := w.SelectDate(ctx, "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	if err := w.SelectSlot(ctx, "09:00"); err != nil {
		t.Fatalf("SelectSlot() error: %v", err)
	}
	if len(w.Draft().AvailableTechnicians) == 0 {
		t.Fatalf("expected technicians loaded")
	}

	if err := w.SelectDate(ctx, "2026-09-02"); err != nil {
		t.Fatalf("second SelectDate() error: %v", err)
	}
	d := w.Draft()
	if d.SelectedSlot != "" {
		t.Fatalf("date change must clear the selected slot, got %q", d.SelectedSlot)
	}
	if len(d.AvailableTechnicians) != 0 || d.SelectedTechnician != nil {
		t.Fatalf("date change must clear technician state")
	}
	if d.Date != "2026-09-02" {
		t.Fatalf("expected the new date, got %q", d.Date)
	}
}

func TestSlotChangeKeepsDateAndSlots(t *testing.T) {
	api := &fakeAPI{}
	w := newReadyWizard(t, api)
	ctx := context.Background()

	if err := w.SelectDate(ctx, "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	if err := w.SelectSlot(ctx, "09:00"); err != nil {
		t.Fatalf("SelectSlot() error: %v", err)
	}
	if err := w.SelectTechnician("t-1"); err != nil {
		t.Fatalf("SelectTechnician() error: %v", err)
	}

	if err := w.SelectSlot(ctx, "10:00"); err != nil {
		t.Fatalf("second SelectSlot() error: %v", err)
	}
	d := w.Draft()
	if d.Date != "2026-09-01" || len(d.AvailableSlots) == 0 {
		t.Fatalf("slot change must not clear date or slot list")
	}
	if d.SelectedTechnician != nil {
		t.Fatalf("slot change must clear the chosen technician")
	}
}

func TestStaleSlotResponseIsDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{
		slotsFn: func(_, date string) ([]string, error) {
			if date == "2026-09-01" {
				close(entered)
				<-release
				return []string{"09:00"}, nil
			}
			return []string{"10:00"}, nil
		},
	}
	w := newReadyWizard(t, api)
	ctx := context.Background()

	firstDone := make(chan error, 1)
	go func() { firstDone <- w.SelectDate(ctx, "2026-09-01") }()

	<-entered
	if err := w.SelectDate(ctx, "2026-09-02"); err != nil {
		t.Fatalf("SelectDate(D2) error: %v", err)
	}
	close(release)

	if err := <-firstDone; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded for the stale query, got %v", err)
	}

	d := w.Draft()
	if d.Date != "2026-09-02" {
		t.Fatalf("expected date D2, got %q", d.Date)
	}
	if len(d.AvailableSlots) != 1 || d.AvailableSlots[0] != "10:00" {
		t.Fatalf("slots must reflect D2's response only, got %v", d.AvailableSlots)
	}
}

func TestFailedSlotQueryLeavesSlotsEmpty(t *testing.T) {
	api := &fakeAPI{
		slotsFn: func(_, _ string) ([]string, error) {
			return nil, fmt.Errorf("backend unavailable")
		},
	}
	w := newReadyWizard(t, api)

	if err := w.SelectDate(context.Background(), "2026-09-01"); err == nil {
		t.Fatalf("expected error from failed slot query")
	}
	d := w.Draft()
	if len(d.AvailableSlots) != 0 {
		t.Fatalf("failed query must leave slots empty, got %v", d.AvailableSlots)
	}
	if d.Date != "2026-09-01" {
		t.Fatalf("the chosen date itself stays, got %q", d.Date)
	}
}

func TestSlotPolicyAppliedInBookingFlow(t *testing.T) {
	api := &fakeAPI{
		slotsFn: func(_, _ string) ([]string, error) {
			return []string{"09:00", "09:10", "12:30", "14:45"}, nil
		},
	}
	w := newReadyWizard(t, api)

	if err := w.SelectDate(context.Background(), "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	got := w.Draft().AvailableSlots
	want := []string{"09:00", "14:45"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRescheduleFlowSkipsSlotPolicy(t *testing.T) {
	api := &fakeAPI{
		slotsFn: func(_, _ string) ([]string, error) {
			return []string{"09:10", "12:30"}, nil
		},
	}
	appt := models.Appointment{ID: "a-9", ServiceID: "svc-1", StartTime: mustLocalTime(t, "2026-09-01", "10:00")}
	w := NewRescheduleWizard(api, zap.NewNop(), appt)

	if err := w.SelectDate(context.Background(), "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	if got := w.Draft().AvailableSlots; len(got) != 2 {
		t.Fatalf("reschedule flow must not filter, got %v", got)
	}
}

func TestConfirmAutoAssignOmitsTechnician(t *testing.T) {
	api := &fakeAPI{}
	w := newReadyWizard(t, api)
	ctx := context.Background()

	if err := w.SelectDate(ctx, "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	if err := w.SelectSlot(ctx, "10:00"); err != nil {
		t.Fatalf("SelectSlot() error: %v", err)
	}
	if err := w.AutoAssign(); err != nil {
		t.Fatalf("AutoAssign() error: %v", err)
	}

	appt, err := w.Confirm(ctx)
	if err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}
	if appt == nil {
		t.Fatalf("expected created appointment")
	}
	if api.lastCreateReq.TechnicianID != nil {
		t.Fatalf("auto-assign must omit the technician id")
	}
	if api.lastCreateReq.ServiceID != "svc-1" {
		t.Fatalf("expected service id in payload, got %q", api.lastCreateReq.ServiceID)
	}
	want := mustLocalTime(t, "2026-09-01", "10:00")
	if !api.lastCreateReq.StartTime.Equal(want) {
		t.Fatalf("expected start %v, got %v", want, api.lastCreateReq.StartTime)
	}
	if w.State() != StateIdle {
		t.Fatalf("draft must be discarded after a confirmed booking")
	}
}

func TestConfirmWithChosenTechnician(t *testing.T) {
	api := &fakeAPI{}
	w := newReadyWizard(t, api)
	ctx := context.Background()

	if err := w.SelectDate(ctx, "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	if err := w.SelectSlot(ctx, "09:00"); err != nil {
		t.Fatalf("SelectSlot() error: %v", err)
	}
	if err := w.SelectTechnician("t-1"); err != nil {
		t.Fatalf("SelectTechnician() error: %v", err)
	}

	if _, err := w.Confirm(ctx); err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}
	if api.lastCreateReq.TechnicianID == nil || *api.lastCreateReq.TechnicianID != "t-1" {
		t.Fatalf("expected technician t-1 in payload")
	}
}

func TestRescheduleIdenticalTimeIsLocalNoOp(t *testing.T) {
	api := &fakeAPI{
		slotsFn: func(_, _ string) ([]string, error) {
			return []string{"10:00", "11:00"}, nil
		},
	}
	appt := models.Appointment{ID: "a-9", ServiceID: "svc-1", StartTime: mustLocalTime(t, "2026-09-01", "10:00")}
	w := NewRescheduleWizard(api, zap.NewNop(), appt)
	ctx := context.Background()

	if err := w.SelectDate(ctx, "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	if err := w.SelectSlot(ctx, "10:00"); err != nil {
		t.Fatalf("SelectSlot() error: %v", err)
	}
	if err := w.AutoAssign(); err != nil {
		t.Fatalf("AutoAssign() error: %v", err)
	}

	_, err := w.Confirm(ctx)
	if !errors.Is(err, ErrNoChange) {
		t.Fatalf("expected ErrNoChange, got %v", err)
	}
	if api.reschedCalls != 0 {
		t.Fatalf("identical time must not hit the network, got %d calls", api.reschedCalls)
	}
}

func TestRescheduleToNewTime(t *testing.T) {
	api := &fakeAPI{
		slotsFn: func(_, _ string) ([]string, error) {
			return []string{"10:00", "11:00"}, nil
		},
	}
	appt := models.Appointment{ID: "a-9", ServiceID: "svc-1", StartTime: mustLocalTime(t, "2026-09-01", "10:00")}
	w := NewRescheduleWizard(api, zap.NewNop(), appt)
	ctx := context.Background()

	if err := w.SelectDate(ctx, "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	if err := w.SelectSlot(ctx, "11:00"); err != nil {
		t.Fatalf("SelectSlot() error: %v", err)
	}
	if err := w.AutoAssign(); err != nil {
		t.Fatalf("AutoAssign() error: %v", err)
	}

	updated, err := w.Confirm(ctx)
	if err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}
	if api.reschedCalls != 1 {
		t.Fatalf("expected exactly one reschedule call, got %d", api.reschedCalls)
	}
	want := mustLocalTime(t, "2026-09-01", "11:00")
	if !updated.StartTime.Equal(want) {
		t.Fatalf("expected new start %v, got %v", want, updated.StartTime)
	}
}

func TestSelectSlotRejectsUnlistedSlot(t *testing.T) {
	api := &fakeAPI{}
	w := newReadyWizard(t, api)
	ctx := context.Background()

	if err := w.SelectDate(ctx, "2026-09-01"); err != nil {
		t.Fatalf("SelectDate() error: %v", err)
	}
	if err := w.SelectSlot(ctx, "23:59"); err == nil {
		t.Fatalf("expected rejection of a slot outside the available list")
	}
}

func mustLocalTime(t *testing.T, date, clock string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return ts
}
