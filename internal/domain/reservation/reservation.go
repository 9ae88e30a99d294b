package reservation

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrInvalidGuests    = errors.New("guest count must be at least 1")
	ErrRoomTypeMismatch = errors.New("declared room type does not match the room")
)

type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCheckedIn Status = "CheckedIn"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCancelled, StatusCheckedIn:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Blocking reports whether the reservation occupies its room. Cancelled
// reservations are invisible to the availability check.
func (s Status) Blocking() bool {
	return s != StatusCancelled
}

// Number is the human-readable booking reference handed to guests, in the
// form "#NNNNN". The five-digit keyspace is small, so uniqueness is enforced
// by the storage layer and generation is retried on collision.
type Number string

const (
	numberMin = 10000
	numberMax = 99999
)

func NewNumber() Number {
	n := numberMin + rand.IntN(numberMax-numberMin+1)
	return Number(fmt.Sprintf("#%05d", n))
}

func ParseNumber(s string) (Number, error) {
	if len(s) != 6 || s[0] != '#' {
		return "", errors.New("reservation number must look like #12345")
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return "", errors.New("reservation number must look like #12345")
		}
	}
	return Number(s), nil
}

func (n Number) String() string {
	return string(n)
}

type Reservation struct {
	id         uuid.UUID
	number     Number
	roomID     uuid.UUID
	roomType   room.Type
	stay       Stay
	customerID uuid.UUID
	guests     int
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// New builds a Confirmed reservation after checking the declared room type
// against the room's stored type. Availability is the caller's concern; the
// storage layer backstops it with an exclusion constraint.
func New(
	roomEntity *room.Room,
	declaredType room.Type,
	stay Stay,
	customerID uuid.UUID,
	guests int,
) (*Reservation, error) {
	if declaredType != roomEntity.Type() {
		return nil, ErrRoomTypeMismatch
	}
	if guests < 1 {
		return nil, ErrInvalidGuests
	}

	return &Reservation{
		id:         uuid.New(),
		number:     NewNumber(),
		roomID:     roomEntity.ID(),
		roomType:   roomEntity.Type(),
		stay:       stay,
		customerID: customerID,
		guests:     guests,
		status:     StatusConfirmed,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	number Number,
	roomID uuid.UUID,
	roomType room.Type,
	stay Stay,
	customerID uuid.UUID,
	guests int,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		number:     number,
		roomID:     roomID,
		roomType:   roomType,
		stay:       stay,
		customerID: customerID,
		guests:     guests,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// RegenerateNumber draws a fresh booking reference after a storage-level
// uniqueness collision.
func (r *Reservation) RegenerateNumber() {
	r.number = NewNumber()
}

// TransitionTo is unconditional among the three valid statuses. There is no
// state-machine guard: Cancelled -> Confirmed is allowed.
func (r *Reservation) TransitionTo(status Status) error {
	if _, err := NewStatus(status.String()); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Number() Number        { return r.number }
func (r *Reservation) RoomID() uuid.UUID     { return r.roomID }
func (r *Reservation) RoomType() room.Type   { return r.roomType }
func (r *Reservation) Stay() Stay            { return r.stay }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Guests() int           { return r.guests }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
