//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	Number     string
	RoomID     uuid.UUID
	RoomTitle  string
	RoomType   string
	CheckIn    string
	CheckOut   string
	CustomerID uuid.UUID
	Guests     int
	Status     string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		Number:     "#10234",
		RoomID:     uuid.New(),
		RoomTitle:  "Seaside Double",
		RoomType:   "Double",
		CheckIn:    "2026-03-10",
		CheckOut:   "2026-03-12",
		CustomerID: uuid.New(),
		Guests:     2,
		Status:     "Confirmed",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:     r.RoomID,
		RoomType:   r.RoomType,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		CustomerID: r.CustomerID,
		Guests:     r.Guests,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now().UTC()
	checkIn, _ := time.Parse(time.DateOnly, r.CheckIn)
	checkOut, _ := time.Parse(time.DateOnly, r.CheckOut)
	return &queries.ReservationView{
		ID:            r.ID,
		Number:        r.Number,
		RoomID:        r.RoomID,
		RoomTitle:     r.RoomTitle,
		RoomType:      r.RoomType,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		CustomerID:    r.CustomerID,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Guests:        r.Guests,
		Status:        r.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
