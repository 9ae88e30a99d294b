package request

import (
	"time"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
)

type CreateReservationRequest struct {
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	RoomType   string    `json:"room_type" binding:"required,oneof=Single Double Triple"`
	CheckIn    string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Guests     int       `json:"guests" binding:"required,min=1"`
}

func (r CreateReservationRequest) ToDomain() (room.Type, reservation.Stay, error) {
	declaredType, err := room.NewType(r.RoomType)
	if err != nil {
		return "", reservation.Stay{}, err
	}
	checkIn, err := time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return "", reservation.Stay{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return "", reservation.Stay{}, err
	}
	stay, err := reservation.NewStay(checkIn, checkOut)
	if err != nil {
		return "", reservation.Stay{}, err
	}
	return declaredType, stay, nil
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateReservationStatusRequest) ToDomain() (reservation.Status, error) {
	return reservation.NewStatus(r.Status)
}

type CheckAvailabilityQuery struct {
	RoomID   string `form:"room_id" binding:"required"`
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}
