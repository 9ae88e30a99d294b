package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod  = errors.New("invalid payment method")
	ErrInvalidStatus  = errors.New("invalid payment status")
	ErrNegativeAmount = errors.New("payment amount cannot be negative")
)

type Method string

const (
	MethodCash         Method = "Cash"
	MethodCreditCard   Method = "CreditCard"
	MethodBankTransfer Method = "BankTransfer"
)

func NewMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodCash, MethodCreditCard, MethodBankTransfer:
		return Method(s), nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string {
	return string(m)
}

type Status string

const (
	StatusPaid     Status = "Paid"
	StatusPending  Status = "Pending"
	StatusFailed   Status = "Failed"
	StatusRefunded Status = "Refunded"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPaid, StatusPending, StatusFailed, StatusRefunded:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

const DefaultCurrency = "EUR"

// Payment records money received for a reservation. Payments are created
// independently of reservation status and are never cascaded on deletion.
type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	customerID    uuid.UUID
	amountCents   int64
	currency      string
	method        Method
	status        Status
	transactionID string
	paidAt        time.Time
	createdAt     time.Time
}

func New(
	reservationID, customerID uuid.UUID,
	amountCents int64,
	currency string,
	method Method,
	status Status,
	transactionID string,
	paidAt time.Time,
) (*Payment, error) {
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	if _, err := NewMethod(method.String()); err != nil {
		return nil, err
	}
	if status == "" {
		status = StatusPaid
	}
	if _, err := NewStatus(status.String()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}

	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		customerID:    customerID,
		amountCents:   amountCents,
		currency:      currency,
		method:        method,
		status:        status,
		transactionID: strings.TrimSpace(transactionID),
		paidAt:        paidAt,
	}, nil
}

func Reconstruct(
	id, reservationID, customerID uuid.UUID,
	amountCents int64,
	currency string,
	method Method,
	status Status,
	transactionID string,
	paidAt, createdAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		customerID:    customerID,
		amountCents:   amountCents,
		currency:      currency,
		method:        method,
		status:        status,
		transactionID: transactionID,
		paidAt:        paidAt,
		createdAt:     createdAt,
	}
}

func (p *Payment) Update(amountCents int64, currency string, method Method, status Status, transactionID string) error {
	if amountCents < 0 {
		return ErrNegativeAmount
	}
	if _, err := NewMethod(method.String()); err != nil {
		return err
	}
	if _, err := NewStatus(status.String()); err != nil {
		return err
	}
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}
	p.amountCents = amountCents
	p.currency = currency
	p.method = method
	p.status = status
	p.transactionID = strings.TrimSpace(transactionID)
	return nil
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) CustomerID() uuid.UUID    { return p.customerID }
func (p *Payment) AmountCents() int64       { return p.amountCents }
func (p *Payment) Currency() string         { return p.currency }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) TransactionID() string    { return p.transactionID }
func (p *Payment) PaidAt() time.Time        { return p.paidAt }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
