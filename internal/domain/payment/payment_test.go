//go:build unit

package payment_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	reservationID := uuid.New()
	customerID := uuid.New()
	paidAt := time.Date(2026, time.May, 2, 14, 0, 0, 0, time.UTC)

	t.Run("defaults fill in", func(t *testing.T) {
		p, err := payment.New(reservationID, customerID, 18900, "", payment.MethodCash, "", "", paidAt)
		require.NoError(t, err)

		assert.Equal(t, payment.StatusPaid, p.Status())
		assert.Equal(t, payment.DefaultCurrency, p.Currency())
		assert.Equal(t, paidAt, p.PaidAt())
		assert.Empty(t, p.TransactionID())
	})

	t.Run("explicit values win", func(t *testing.T) {
		p, err := payment.New(reservationID, customerID, 5000, "CHF", payment.MethodCreditCard, payment.StatusPending, " tx-123 ", paidAt)
		require.NoError(t, err)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, "CHF", p.Currency())
		assert.Equal(t, "tx-123", p.TransactionID())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := payment.New(reservationID, customerID, -1, "", payment.MethodCash, "", "", paidAt)
		assert.ErrorIs(t, err, payment.ErrNegativeAmount)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := payment.New(reservationID, customerID, 100, "", payment.Method("Cheque"), "", "", paidAt)
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := payment.New(reservationID, customerID, 100, "", payment.MethodCash, payment.Status("Voided"), "", paidAt)
		assert.ErrorIs(t, err, payment.ErrInvalidStatus)
	})
}

func TestPaymentUpdate(t *testing.T) {
	p, err := payment.New(uuid.New(), uuid.New(), 10000, "EUR", payment.MethodCash, payment.StatusPending, "", time.Now())
	require.NoError(t, err)

	t.Run("valid update", func(t *testing.T) {
		require.NoError(t, p.Update(12000, "EUR", payment.MethodBankTransfer, payment.StatusPaid, "wire-9"))
		assert.Equal(t, int64(12000), p.AmountCents())
		assert.Equal(t, payment.MethodBankTransfer, p.Method())
		assert.Equal(t, payment.StatusPaid, p.Status())
		assert.Equal(t, "wire-9", p.TransactionID())
	})

	t.Run("invalid update leaves the payment untouched", func(t *testing.T) {
		err := p.Update(-5, "EUR", payment.MethodCash, payment.StatusPaid, "")
		assert.ErrorIs(t, err, payment.ErrNegativeAmount)
		assert.Equal(t, int64(12000), p.AmountCents())
	})
}
