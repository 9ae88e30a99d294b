package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/payment"
)

func NewPaymentView(p *payment.Payment) *PaymentView {
	return &PaymentView{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		CustomerID:    p.CustomerID(),
		AmountCents:   p.AmountCents(),
		Currency:      p.Currency(),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		TransactionID: p.TransactionID(),
		PaidAt:        p.PaidAt(),
		CreatedAt:     p.CreatedAt(),
	}
}

type PaymentQueries interface {
	// List optionally narrows to one reservation's payments.
	List(ctx context.Context, reservationID *uuid.UUID) ([]*PaymentView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
}

type PaymentViewRepo interface {
	List(ctx context.Context, reservationID *uuid.UUID) ([]*PaymentView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
}

type paymentQueriesImpl struct {
	repo PaymentViewRepo
}

func NewPaymentQueries(repo PaymentViewRepo) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) List(ctx context.Context, reservationID *uuid.UUID) ([]*PaymentView, error) {
	return q.repo.List(ctx, reservationID)
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	entity, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPaymentView(entity), nil
}
