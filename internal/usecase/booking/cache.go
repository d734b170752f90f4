package booking

import (
	"context"
	"time"

	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
)

// AvailabilityCache fronts the day-grid computation. Implementations
// must be safe to call through a nil pointer so wiring stays optional.
type AvailabilityCache interface {
	Get(ctx context.Context, date time.Time) ([]domain.Slot, bool)
	Set(ctx context.Context, date time.Time, slots []domain.Slot)
	Invalidate(ctx context.Context, date time.Time)
}
