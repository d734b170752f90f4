package booking

import (
	"context"

	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
	"github.com/glamora/salon-scheduler/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns every booking, newest first, with its service loaded.
// Bookings are never deleted here; the full history is the audit trail
// the admin screen works from.
func (uc *ListBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx)
}
