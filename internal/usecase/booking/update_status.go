package booking

import (
	"context"
	"time"

	"github.com/glamora/salon-scheduler/internal/audit"
	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
	"github.com/glamora/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateStatusInput struct {
	BookingID uint
	StaffID   *uint

	// All optional; a request may change status, attach a suggestion,
	// attach notes, or any combination.
	Status        *string
	SuggestedDate *time.Time
	AdminNotes    *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	var updated *models.Booking

	// The read-modify-write runs under a row lock so concurrent updates
	// to one booking cannot skip the transition check.
	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingForUpdate(ctx, in.BookingID)
		if err != nil {
			return err
		}

		// Annotations are judged against the state before any transition.
		if in.SuggestedDate != nil || in.AdminNotes != nil {
			if err := domain.Annotate(b, in.SuggestedDate, in.AdminNotes); err != nil {
				return err
			}
		}

		if in.Status != nil {
			to, err := domain.ParseStatus(*in.Status)
			if err != nil {
				return err
			}
			if err := domain.Transition(b, to); err != nil {
				return err
			}
		}

		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	// A rejection frees the slot, so the cached day grid is stale.
	uc.cache.Invalidate(ctx, updated.SlotStart)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &updated.ID,
		Metadata: map[string]any{"status": updated.Status},
	})

	return updated, nil
}
