package booking

import (
	"time"

	"github.com/glamora/salon-scheduler/internal/httperr"
	"github.com/glamora/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Transition(b *models.Booking, to Status) error {
	if err := CanTransition(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)
	return nil
}

// Annotate attaches a staff suggestion and/or notes. Only non-terminal
// bookings accept annotations; the primary status is untouched.
func Annotate(b *models.Booking, suggested *time.Time, notes *string) error {
	if Status(b.Status).Terminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	if suggested != nil {
		b.SuggestedDate = suggested
	}
	if notes != nil {
		b.AdminNotes = *notes
	}
	return nil
}

func MarkSeen(b *models.Booking) {
	b.Seen = true
}
