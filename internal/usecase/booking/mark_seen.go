package booking

import (
	"context"

	"github.com/glamora/salon-scheduler/internal/audit"
	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
	"github.com/glamora/salon-scheduler/internal/models"
)

type MarkSeen struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkSeen(repo domain.Repository, audit *audit.Dispatcher) *MarkSeen {
	return &MarkSeen{repo: repo, audit: audit}
}

// Execute sets the staff acknowledgment flag. The flag is orthogonal to
// the primary status and may be set in any state, terminal included.
func (uc *MarkSeen) Execute(
	ctx context.Context,
	bookingID uint,
	staffID *uint,
) (*models.Booking, error) {

	var updated *models.Booking

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		domain.MarkSeen(b)

		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   staffID,
		Action:   "booking_seen",
		Entity:   "booking",
		EntityID: &updated.ID,
	})

	return updated, nil
}
