package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/glamora/salon-scheduler/internal/cache"
	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
	"github.com/glamora/salon-scheduler/internal/httperr"
	"github.com/glamora/salon-scheduler/internal/models"
)

func newAdmit(repo *MockRepository) *AdmitBooking {
	return NewAdmitBooking(repo, nil, cache.NewAvailabilityCache(nil))
}

func slotAt(hour, minute int) time.Time {
	return time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC)
}

func haircut() *models.Service {
	return &models.Service{ID: 1, Title: "Haircut", Price: 25, DurationMin: 30}
}

func TestAdmit_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetService", mock.Anything, uint(1)).Return(haircut(), nil)
	repo.On("CountAtSlot", mock.Anything, slotAt(9, 0), domain.StatusRejected).Return(int64(0), nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	b, err := newAdmit(repo).Execute(context.Background(), AdmitBookingInput{
		ServiceID:    1,
		CustomerName: "Ann",
		PhoneNumber:  "555",
		Start:        slotAt(9, 0),
	})

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.True(t, b.SlotStart.Equal(slotAt(9, 0)))
	assert.Equal(t, "Haircut", b.Service.Title)
	assert.Equal(t, uint(999), b.ID)

	_, err = uuid.Parse(b.Reference)
	assert.NoError(t, err, "reference should be a uuid")

	repo.AssertExpectations(t)
}

func TestAdmit_NormalizesSeconds(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetService", mock.Anything, uint(1)).Return(haircut(), nil)
	repo.On("CountAtSlot", mock.Anything, slotAt(9, 15), domain.StatusRejected).Return(int64(0), nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	raw := time.Date(2024, 6, 1, 9, 15, 42, 0, time.UTC)
	b, err := newAdmit(repo).Execute(context.Background(), AdmitBookingInput{
		ServiceID:    1,
		CustomerName: "Ann",
		PhoneNumber:  "555",
		Start:        raw,
	})

	require.NoError(t, err)
	assert.True(t, b.SlotStart.Equal(slotAt(9, 15)))
}

func TestAdmit_ServiceNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetService", mock.Anything, uint(42)).
		Return(nil, httperr.ErrBusiness(httperr.CodeServiceNotFound))

	_, err := newAdmit(repo).Execute(context.Background(), AdmitBookingInput{
		ServiceID:    42,
		CustomerName: "Ann",
		PhoneNumber:  "555",
		Start:        slotAt(9, 0),
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestAdmit_OutOfHours(t *testing.T) {
	for _, start := range []time.Time{slotAt(8, 45), slotAt(18, 0), slotAt(22, 30)} {
		repo := new(MockRepository)
		repo.On("GetService", mock.Anything, uint(1)).Return(haircut(), nil)

		_, err := newAdmit(repo).Execute(context.Background(), AdmitBookingInput{
			ServiceID:    1,
			CustomerName: "Ann",
			PhoneNumber:  "555",
			Start:        start,
		})

		assert.True(t, httperr.IsBusiness(err, httperr.CodeOutOfHours), "start %s", start)
		repo.AssertNotCalled(t, "CountAtSlot", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	}
}

func TestAdmit_MisalignedSlot(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetService", mock.Anything, uint(1)).Return(haircut(), nil)

	_, err := newAdmit(repo).Execute(context.Background(), AdmitBookingInput{
		ServiceID:    1,
		CustomerName: "Ann",
		PhoneNumber:  "555",
		Start:        slotAt(9, 5),
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeMisalignedSlot))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestAdmit_SlotTaken(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetService", mock.Anything, uint(1)).Return(haircut(), nil)
	repo.On("CountAtSlot", mock.Anything, slotAt(9, 0), domain.StatusRejected).Return(int64(1), nil)

	_, err := newAdmit(repo).Execute(context.Background(), AdmitBookingInput{
		ServiceID:    1,
		CustomerName: "Ann",
		PhoneNumber:  "555",
		Start:        slotAt(9, 0),
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestAdmit_RejectsBadInput(t *testing.T) {
	cases := []AdmitBookingInput{
		{ServiceID: 1, CustomerName: "", PhoneNumber: "555", Start: slotAt(9, 0)},
		{ServiceID: 1, CustomerName: "   ", PhoneNumber: "555", Start: slotAt(9, 0)},
		{ServiceID: 1, CustomerName: "Ann", PhoneNumber: "not a phone", Start: slotAt(9, 0)},
	}

	for _, in := range cases {
		repo := new(MockRepository)

		_, err := newAdmit(repo).Execute(context.Background(), in)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest), "%+v", in)
		repo.AssertNotCalled(t, "GetService", mock.Anything, mock.Anything)
	}
}
