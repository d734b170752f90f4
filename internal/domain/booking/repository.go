package booking

import (
	"context"
	"time"

	"github.com/glamora/salon-scheduler/internal/models"
)

// Repository is the store gateway the engine depends on. The gorm
// implementation lives in internal/infra/repository.
type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability --------
	ListBookingsForDate(
		ctx context.Context,
		date time.Time,
		exclude Status,
	) ([]models.Booking, error)

	// CountAtSlot is an indexed lookup over (slot_start, status); inside
	// a transaction it locks the matching rows until commit.
	CountAtSlot(
		ctx context.Context,
		slot time.Time,
		exclude Status,
	) (int64, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// GetBookingForUpdate locks the row for the rest of the transaction
	// so the read-modify-write of the status is serialized per booking.
	GetBookingForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listing --------
	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	// -------- Transactions --------
	// WithinTx runs fn against a transaction-bound repository; the
	// admission check-then-insert executes as one atomic unit.
	WithinTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
