package request

import (
	"time"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/payment"
	"hotel-backoffice/internal/pkg/clock"
)

type CreatePaymentRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	CustomerID    uuid.UUID `json:"customer_id" binding:"required"`
	AmountCents   int64     `json:"amount_cents" binding:"min=0"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method" binding:"required,oneof=Cash CreditCard BankTransfer"`
	Status        string    `json:"status" binding:"omitempty,oneof=Paid Pending Failed Refunded"`
	TransactionID string    `json:"transaction_id"`
	PaidAt        *time.Time `json:"paid_at"`
}

func (r CreatePaymentRequest) ToDomain(clk clock.Clock) (*payment.Payment, error) {
	method, err := payment.NewMethod(r.Method)
	if err != nil {
		return nil, err
	}
	paidAt := clk.Now()
	if r.PaidAt != nil {
		paidAt = *r.PaidAt
	}
	return payment.New(
		r.ReservationID, r.CustomerID,
		r.AmountCents, r.Currency,
		method, payment.Status(r.Status),
		r.TransactionID, paidAt,
	)
}

type UpdatePaymentRequest struct {
	AmountCents   *int64  `json:"amount_cents" binding:"omitempty,min=0"`
	Currency      *string `json:"currency"`
	Method        *string `json:"method" binding:"omitempty,oneof=Cash CreditCard BankTransfer"`
	Status        *string `json:"status" binding:"omitempty,oneof=Paid Pending Failed Refunded"`
	TransactionID *string `json:"transaction_id"`
}
