package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/analytics"
	"hotel-backoffice/internal/domain/customer"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/domain/user"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on transient failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent snapshots
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes transaction-bound repositories. Only the methods command
// handlers need inside a transaction are surfaced here.
type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Customers() CustomerRepository
	Payments() PaymentRepository
	Users() UserRepository
	Analytics() AnalyticsRepository
}

type ReservationRepository interface {
	Insert(ctx context.Context, res *reservation.Reservation) error
	StaysForRoom(ctx context.Context, roomID uuid.UUID) ([]reservation.Stay, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	// day is a calendar date in 2006-01-02 form, already resolved to the
	// reporting timezone by the caller.
	CountActiveCovering(ctx context.Context, day string) (int64, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Count(ctx context.Context) (int64, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type PaymentRepository interface {
	SumPaidBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type UserRepository interface {
	Insert(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type AnalyticsRepository interface {
	UpsertSnapshot(ctx context.Context, s analytics.Snapshot) error
}
