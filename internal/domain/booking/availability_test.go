package booking

import (
	"testing"
	"time"

	"github.com/glamora/salon-scheduler/internal/models"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, hour, minute int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}

func TestAvailability_EmptyDay(t *testing.T) {
	d := day(t)

	slots := Availability(d, nil)
	if len(slots) != 36 {
		t.Fatalf("expected 36 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("expected slot %s available on empty day", s.Time)
		}
	}
	if slots[0].Time != "09:00" || slots[35].Time != "17:45" {
		t.Fatalf("unexpected grid bounds: %s .. %s", slots[0].Time, slots[35].Time)
	}
}

func TestAvailability_BlocksOnlyMatchingSlot(t *testing.T) {
	d := day(t)

	existing := []models.Booking{
		{SlotStart: at(d, 9, 0), Status: string(StatusPending)},
	}

	slots := Availability(d, existing)
	for i, s := range slots {
		wantFree := i != 0
		if s.Available != wantFree {
			t.Errorf("slot %s: available = %v, want %v", s.Time, s.Available, wantFree)
		}
	}
}

// A booking's duration never widens its footprint: only the starting
// slot is blocked.
func TestAvailability_IgnoresDuration(t *testing.T) {
	d := day(t)

	existing := []models.Booking{
		{
			SlotStart: at(d, 10, 0),
			Status:    string(StatusApproved),
			Service:   models.Service{DurationMin: 90},
		},
	}

	slots := Availability(d, existing)
	for _, s := range slots {
		if s.Time == "10:00" && s.Available {
			t.Error("expected 10:00 blocked")
		}
		if s.Time == "10:15" && !s.Available {
			t.Error("expected 10:15 free despite 90-minute service at 10:00")
		}
	}
}

func TestAvailability_OffGridBookingMarksNothing(t *testing.T) {
	d := day(t)

	existing := []models.Booking{
		{SlotStart: at(d, 9, 5), Status: string(StatusPending)},
	}

	for _, s := range Availability(d, existing) {
		if !s.Available {
			t.Fatalf("expected every slot free, %s taken by off-grid booking", s.Time)
		}
	}
}

func TestAvailability_MatchesCanonicalOrder(t *testing.T) {
	d := day(t)

	grid := CanonicalSlots(d)
	slots := Availability(d, nil)
	for i := range slots {
		if slots[i].Time != grid[i].Format(SlotTimeFormat) {
			t.Fatalf("order diverges at index %d: %s vs %s",
				i, slots[i].Time, grid[i].Format(SlotTimeFormat))
		}
	}
}
