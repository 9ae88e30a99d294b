package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotel-backoffice/internal/usecase/queries"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	CustomerID    uuid.UUID `json:"customerId"`
	AmountCents   int64     `json:"amountCents"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId,omitempty"`
	PaidAt        time.Time `json:"paidAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	var resp PaymentResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	out := make([]*PaymentResponse, len(views))
	for i, v := range views {
		out[i] = FromPaymentView(v)
	}
	return out
}
