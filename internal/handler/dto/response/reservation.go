package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotel-backoffice/internal/usecase/queries"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	RoomID        uuid.UUID `json:"roomId"`
	RoomTitle     string    `json:"roomTitle"`
	RoomType      string    `json:"roomType"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Guests        int       `json:"guests"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	resp.CheckIn = v.CheckIn.Format(time.DateOnly)
	resp.CheckOut = v.CheckOut.Format(time.DateOnly)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
