package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotFilter narrows a loaded slot list before it is shown. Filters are
// advisory UX only; the backend remains the authority on bookable times.
type SlotFilter func(slots []string) []string

// Slot times are minutes from midnight once parsed, e.g. 420 for 7:00 AM.
const (
	slotBoundaryMinutes = 15
	middayBlackoutStart = 12 * 60
	middayBlackoutEnd   = 13 * 60
)

// StandardSlotPolicy keeps slots on 15-minute boundaries and outside the
// midday blackout window. The new-booking flow applies it; the reschedule
// flow deliberately does not, matching the established product behavior.
func StandardSlotPolicy(slots []string) []string {
	filtered := make([]string, 0, len(slots))
	for _, slot := range slots {
		minutes, err := minutesOfDay(slot)
		if err != nil {
			continue
		}
		if minutes%slotBoundaryMinutes != 0 {
			continue
		}
		if minutes >= middayBlackoutStart && minutes < middayBlackoutEnd {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

// minutesOfDay parses an "HH:MM" time of day.
func minutesOfDay(slot string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(slot), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed slot %q", slot)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("malformed slot hour %q", slot)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("malformed slot minute %q", slot)
	}
	return hour*60 + minute, nil
}
