package booking

import "time"

// ===============================
// Slot Grid
// ===============================

// Business hours are wall-clock, fixed for every date: [09:00, 18:00)
// at 15-minute granularity, 36 bookable slots per day.
const (
	OpenHour    = 9
	CloseHour   = 18
	SlotMinutes = 15
)

const SlotsPerDay = (CloseHour - OpenHour) * 60 / SlotMinutes

// CanonicalSlots returns the ordered start instants of every bookable
// slot on the given date, in the date's location. Pure; the time-of-day
// sequence is identical for every date.
func CanonicalSlots(date time.Time) []time.Time {
	dayOpen := time.Date(
		date.Year(), date.Month(), date.Day(),
		OpenHour, 0, 0, 0,
		date.Location(),
	)

	slots := make([]time.Time, 0, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		slots = append(slots, dayOpen.Add(time.Duration(i*SlotMinutes)*time.Minute))
	}
	return slots
}

// WithinBusinessHours reports whether the instant starts inside [09:00, 18:00).
func WithinBusinessHours(t time.Time) bool {
	h := t.Hour()
	return h >= OpenHour && h < CloseHour
}

// AlignedToSlot reports whether the instant lands on the 15-minute grid.
func AlignedToSlot(t time.Time) bool {
	return t.Minute()%SlotMinutes == 0
}

// NormalizeSlot drops sub-minute precision so equal wall-clock slots
// compare equal regardless of how the instant was parsed.
func NormalizeSlot(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
