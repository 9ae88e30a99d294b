package commands

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/reservation"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"
)

var (
	ErrRoomNotFound        = errs.New("room not found")
	ErrCustomerNotFound    = errs.New("customer not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrRoomTypeMismatch    = errs.New("declared room type does not match the room")
	ErrRoomUnavailable     = errs.New("room unavailable for the requested dates")
	ErrDomainValidation    = errs.New("domain validation error")
	ErrNumberExhausted     = errs.New("could not allocate a unique reservation number")
)

// Number collisions in the five-digit keyspace are rare; a handful of
// redraws is enough before giving up.
const maxNumberAttempts = 5

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
}

func NewReservationCommands(uow shared.UnitOfWork, reservationQueries queries.ReservationQueries) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	declaredType, stay, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomEntity, err := tx.Rooms().FindByID(ctx, req.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Wrap(err, "failed to load room")
		}

		if _, err := tx.Customers().FindByID(ctx, req.CustomerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Wrap(err, "failed to load customer")
		}

		entity, err := reservation.New(roomEntity, declaredType, stay, req.CustomerID, req.Guests)
		if err != nil {
			if errs.Is(err, reservation.ErrRoomTypeMismatch) {
				return ErrRoomTypeMismatch
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		existing, err := tx.Reservations().StaysForRoom(ctx, req.RoomID)
		if err != nil {
			return errs.Wrap(err, "failed to load existing stays")
		}
		if !reservation.Available(stay, existing) {
			return ErrRoomUnavailable
		}

		if err := r.insertWithNumberRetry(ctx, tx, entity); err != nil {
			return err
		}

		reservationID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, reservationID)
}

// insertWithNumberRetry redraws the booking number on a unique-index
// collision. An exclusion violation means another transaction won the room
// for overlapping dates after our in-tx check.
func (r *reservationCommandsImpl) insertWithNumberRetry(ctx context.Context, tx shared.Tx, entity *reservation.Reservation) error {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		err := tx.Reservations().Insert(ctx, entity)
		if err == nil {
			return nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			return ErrRoomUnavailable
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			entity.RegenerateNumber()
			continue
		}
		return errs.Wrap(err, "failed to insert reservation")
	}
	return ErrNumberExhausted
}

func (r *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) (*queries.ReservationView, error) {
	status, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().UpdateStatus(ctx, id, status); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			// Un-cancelling can collide with a reservation made in the
			// meantime; the exclusion constraint reports it here.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrRoomUnavailable
			}
			return errs.Wrap(err, "failed to update reservation status")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, id)
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Wrap(err, "failed to delete reservation")
		}
		return nil
	})
}
