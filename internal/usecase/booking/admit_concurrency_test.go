package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora/salon-scheduler/internal/cache"
	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
	"github.com/glamora/salon-scheduler/internal/httperr"
	"github.com/glamora/salon-scheduler/internal/models"
)

// memStore is a minimal store gateway whose WithinTx holds a mutex for
// the whole body, mirroring the serialization the SQL store provides
// with its transaction plus row locks.
type memStore struct {
	mu       sync.Mutex
	nextID   uint
	services map[uint]models.Service
	bookings map[uint]models.Booking
}

func newMemStore(services ...models.Service) *memStore {
	s := &memStore{
		services: make(map[uint]models.Service),
		bookings: make(map[uint]models.Booking),
	}
	for _, svc := range services {
		s.services[svc.ID] = svc
	}
	return s
}

func (s *memStore) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := s.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	return &svc, nil
}

func (s *memStore) ListBookingsForDate(_ context.Context, date time.Time, exclude domain.Status) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		sameDay := b.SlotStart.Year() == date.Year() && b.SlotStart.YearDay() == date.YearDay()
		if sameDay && b.Status != string(exclude) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memStore) CountAtSlot(_ context.Context, slot time.Time, exclude domain.Status) (int64, error) {
	var count int64
	for _, b := range s.bookings {
		if b.SlotStart.Equal(slot) && b.Status != string(exclude) {
			count++
		}
	}
	return count, nil
}

func (s *memStore) CreateBooking(_ context.Context, b *models.Booking) error {
	s.nextID++
	b.ID = s.nextID
	s.bookings[b.ID] = *b
	return nil
}

func (s *memStore) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	return s.GetBookingForUpdate(context.Background(), id)
}

func (s *memStore) GetBookingForUpdate(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	return &b, nil
}

func (s *memStore) SaveBooking(_ context.Context, b *models.Booking) error {
	s.bookings[b.ID] = *b
	return nil
}

func (s *memStore) ListBookings(_ context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (s *memStore) WithinTx(_ context.Context, fn func(domain.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

var _ domain.Repository = (*memStore)(nil)

func TestAdmit_ConcurrentSameSlot(t *testing.T) {
	store := newMemStore(models.Service{ID: 1, Title: "Haircut", DurationMin: 30})
	uc := NewAdmitBooking(store, nil, cache.NewAvailabilityCache(nil))

	const workers = 8
	slot := slotAt(9, 0)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = uc.Execute(context.Background(), AdmitBookingInput{
				ServiceID:    1,
				CustomerName: "Ann",
				PhoneNumber:  "555",
				Start:        slot,
			})
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won, "exactly one admission must win")
	assert.Equal(t, workers-1, lost)

	count, err := store.CountAtSlot(context.Background(), slot, domain.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "store must hold one non-rejected booking for the slot")
}

func TestAdmit_RejectionFreesSlot(t *testing.T) {
	store := newMemStore(models.Service{ID: 1, Title: "Haircut", DurationMin: 30})
	admit := NewAdmitBooking(store, nil, cache.NewAvailabilityCache(nil))
	update := NewUpdateStatus(store, nil, cache.NewAvailabilityCache(nil))

	slot := slotAt(10, 30)
	in := AdmitBookingInput{ServiceID: 1, CustomerName: "Ann", PhoneNumber: "555", Start: slot}

	first, err := admit.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = admit.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	_, err = update.Execute(context.Background(), UpdateStatusInput{
		BookingID: first.ID,
		Status:    strptr("rejected"),
	})
	require.NoError(t, err)

	second, err := admit.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	slots, err := NewGetAvailability(store, cache.NewAvailabilityCache(nil)).
		Execute(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	for _, s := range slots {
		if s.Time == "10:30" {
			assert.False(t, s.Available, "slot should be taken by the re-booking")
		}
	}
}
