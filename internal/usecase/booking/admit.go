package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glamora/salon-scheduler/internal/audit"
	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
	"github.com/glamora/salon-scheduler/internal/httperr"
	"github.com/glamora/salon-scheduler/internal/models"
	"github.com/glamora/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type AdmitBookingInput struct {
	ServiceID    uint
	CustomerName string
	PhoneNumber  string

	// Requested slot start, already parsed into the salon wall clock.
	Start time.Time
}

// ======================================================
// USE CASE
// ======================================================

type AdmitBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewAdmitBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *AdmitBooking {
	return &AdmitBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AdmitBooking) Execute(
	ctx context.Context,
	in AdmitBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Request shape
	// --------------------------------------------------
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}
	if !validators.IsPhoneValid(in.PhoneNumber) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	// --------------------------------------------------
	// 2. Service must exist
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Business hours + grid alignment
	// --------------------------------------------------
	start := domain.NormalizeSlot(in.Start)

	if !domain.WithinBusinessHours(start) {
		return nil, httperr.ErrBusiness(httperr.CodeOutOfHours)
	}
	if !domain.AlignedToSlot(start) {
		return nil, httperr.ErrBusiness(httperr.CodeMisalignedSlot)
	}

	// --------------------------------------------------
	// 4. Atomic check-then-insert
	// --------------------------------------------------
	b := &models.Booking{
		Reference:    uuid.NewString(),
		ServiceID:    service.ID,
		CustomerName: strings.TrimSpace(in.CustomerName),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		SlotStart:    start,
		Status:       string(domain.InitialStatus()),
	}

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		count, err := tx.CountAtSlot(ctx, start, domain.StatusRejected)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.CreateBooking(ctx, b)
	})

	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			uc.audit.Dispatch(audit.Event{
				Action:   "booking_conflict",
				Entity:   "booking",
				Metadata: map[string]any{"slot_start": start},
			})
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, start)

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_admitted",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"reference": b.Reference, "slot_start": start},
	})

	b.Service = *service
	return b, nil
}
