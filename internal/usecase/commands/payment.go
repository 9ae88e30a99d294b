package commands

import (
	"context"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/payment"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
)

var (
	ErrPaymentNotFound      = errs.New("payment not found")
	ErrPaymentRefersMissing = errs.New("payment references an unknown reservation or customer")
)

type PaymentRepo interface {
	Insert(ctx context.Context, p *payment.Payment) error
	Update(ctx context.Context, p *payment.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
}

type PaymentCommands interface {
	Create(ctx context.Context, req reqdto.CreatePaymentRequest) (*queries.PaymentView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdatePaymentRequest) (*queries.PaymentView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentCommandsImpl struct {
	repo  PaymentRepo
	clock clock.Clock
}

func NewPaymentCommands(repo PaymentRepo, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{repo: repo, clock: clk}
}

func (p *paymentCommandsImpl) Create(ctx context.Context, req reqdto.CreatePaymentRequest) (*queries.PaymentView, error) {
	entity, err := req.ToDomain(p.clock)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := p.repo.Insert(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrPaymentRefersMissing
		}
		return nil, errs.Wrap(err, "failed to insert payment")
	}

	return queries.NewPaymentView(entity), nil
}

func (p *paymentCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdatePaymentRequest) (*queries.PaymentView, error) {
	entity, err := p.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Wrap(err, "failed to load payment")
	}

	amountCents := entity.AmountCents()
	if req.AmountCents != nil {
		amountCents = *req.AmountCents
	}
	currency := entity.Currency()
	if req.Currency != nil {
		currency = *req.Currency
	}
	method := entity.Method()
	if req.Method != nil {
		method = payment.Method(*req.Method)
	}
	status := entity.Status()
	if req.Status != nil {
		status = payment.Status(*req.Status)
	}
	transactionID := entity.TransactionID()
	if req.TransactionID != nil {
		transactionID = *req.TransactionID
	}
	if err := entity.Update(amountCents, currency, method, status, transactionID); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := p.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Wrap(err, "failed to update payment")
	}

	return queries.NewPaymentView(entity), nil
}

func (p *paymentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPaymentNotFound
		}
		return errs.Wrap(err, "failed to delete payment")
	}
	return nil
}
