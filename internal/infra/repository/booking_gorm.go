package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
	"github.com/glamora/salon-scheduler/internal/httperr"
	"github.com/glamora/salon-scheduler/internal/models"
)

const pgUniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// Row locks are Postgres-only; the SQLite test database serializes
// writes on its own.
func (r *BookingGormRepository) locked(tx *gorm.DB) *gorm.DB {
	if r.db.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	date time.Time,
	exclude domain.Status,
) ([]models.Booking, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"slot_start >= ? AND slot_start < ? AND status <> ?",
			dayStart, dayEnd, string(exclude),
		).
		Order("slot_start ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CountAtSlot(
	ctx context.Context,
	slot time.Time,
	exclude domain.Status,
) (int64, error) {

	var count int64
	if err := r.locked(r.db.WithContext(ctx)).
		Model(&models.Booking{}).
		Where("slot_start = ? AND status <> ?", slot, string(exclude)).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Booking (create)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		// The partial unique index on active slots is the storage-side
		// backstop behind the locked count.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingForUpdate(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.locked(r.db.WithContext(ctx)).
		First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
