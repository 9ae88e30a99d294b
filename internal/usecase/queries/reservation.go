package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
)

type ReservationQueries interface {
	List(ctx context.Context) ([]*ReservationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	SearchByNumber(ctx context.Context, number string) (*ReservationView, error)
	// CheckAvailability answers false for anything it cannot resolve: bad
	// ids, bad dates, unknown rooms. Callers get a definite no, never an
	// error they might misread as yes.
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) bool
}

type ReservationViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindViewByNumber(ctx context.Context, number reservation.Number) (*ReservationView, error)
	ListViews(ctx context.Context) ([]*ReservationView, error)
	StaysForRoom(ctx context.Context, roomID uuid.UUID) ([]reservation.Stay, error)
}

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type reservationQueriesImpl struct {
	repo  ReservationViewRepo
	rooms RoomReader
}

func NewReservationQueries(repo ReservationViewRepo, rooms RoomReader) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, rooms: rooms}
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	return q.repo.ListViews(ctx)
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindViewByID(ctx, id)
}

func (q *reservationQueriesImpl) SearchByNumber(ctx context.Context, raw string) (*ReservationView, error) {
	// Path segments arrive without the hash, so restore it before parsing.
	// A number that cannot exist matches nothing.
	if raw != "" && raw[0] != '#' {
		raw = "#" + raw
	}
	number, err := reservation.ParseNumber(raw)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
	}
	return q.repo.FindViewByNumber(ctx, number)
}

func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, rawRoomID, rawCheckIn, rawCheckOut string) bool {
	roomID, err := uuid.Parse(rawRoomID)
	if err != nil {
		return false
	}
	checkIn, err := time.Parse(time.DateOnly, rawCheckIn)
	if err != nil {
		return false
	}
	checkOut, err := time.Parse(time.DateOnly, rawCheckOut)
	if err != nil {
		return false
	}
	stay, err := reservation.NewStay(checkIn, checkOut)
	if err != nil {
		return false
	}

	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return false
	}

	existing, err := q.repo.StaysForRoom(ctx, roomID)
	if err != nil {
		return false
	}

	return reservation.Available(stay, existing)
}
