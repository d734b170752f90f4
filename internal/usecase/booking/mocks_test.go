package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
	"github.com/glamora/salon-scheduler/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) ListBookingsForDate(ctx context.Context, date time.Time, exclude domain.Status) ([]models.Booking, error) {
	args := m.Called(ctx, date, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) CountAtSlot(ctx context.Context, slot time.Time, exclude domain.Status) (int64, error) {
	args := m.Called(ctx, slot, exclude)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) GetBookingForUpdate(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) SaveBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

// WithinTx runs the body against the mock itself; atomicity is the
// store's concern, not the mock's.
func (m *MockRepository) WithinTx(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(m)
}

var _ domain.Repository = (*MockRepository)(nil)
