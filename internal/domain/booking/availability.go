package booking

import (
	"time"

	"github.com/glamora/salon-scheduler/internal/models"
)

const SlotTimeFormat = "15:04"

type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Availability marks each canonical slot of the date as free or taken
// against the supplied bookings (callers pass the date's non-rejected
// set). A booking blocks exactly the slot whose hour and minute match
// its start; out-of-grid starts mark nothing. Read-only.
func Availability(date time.Time, existing []models.Booking) []Slot {
	taken := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		key := b.SlotStart.In(date.Location()).Format(SlotTimeFormat)
		taken[key] = struct{}{}
	}

	slots := make([]Slot, 0, SlotsPerDay)
	for _, start := range CanonicalSlots(date) {
		key := start.Format(SlotTimeFormat)
		_, busy := taken[key]
		slots = append(slots, Slot{Time: key, Available: !busy})
	}
	return slots
}
