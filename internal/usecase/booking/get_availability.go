package booking

import (
	"context"
	"time"

	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
)

type GetAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, cache AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) ([]domain.Slot, error) {

	if slots, ok := uc.cache.Get(ctx, date); ok {
		return slots, nil
	}

	existing, err := uc.repo.ListBookingsForDate(ctx, date, domain.StatusRejected)
	if err != nil {
		return nil, err
	}

	slots := domain.Availability(date, existing)
	uc.cache.Set(ctx, date, slots)

	return slots, nil
}
