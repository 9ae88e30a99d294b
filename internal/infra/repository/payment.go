package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/payment"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

const paymentColumns = `id, reservation_id, customer_id, amount_cents, currency, method, status, transaction_id, paid_at, created_at`

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payments (id, reservation_id, customer_id, amount_cents, currency, method, status, transaction_id, paid_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID(), p.ReservationID(), p.CustomerID(), p.AmountCents(), p.Currency(),
		p.Method().String(), p.Status().String(), p.TransactionID(), p.PaidAt(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("reservation or customer does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE payments
		 SET amount_cents = $2, currency = $3, method = $4, status = $5, transaction_id = $6, paid_at = $7
		 WHERE id = $1`,
		p.ID(), p.AmountCents(), p.Currency(), p.Method().String(), p.Status().String(), p.TransactionID(), p.PaidAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)

	var (
		pid, resID, custID          uuid.UUID
		amountCents                 int64
		currency, method, status    string
		transactionID               string
		paidAt, createdAt           time.Time
	)
	err := row.Scan(&pid, &resID, &custID, &amountCents, &currency, &method, &status, &transactionID, &paidAt, &createdAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	return payment.Reconstruct(pid, resID, custID, amountCents, currency,
		payment.Method(method), payment.Status(status), transactionID, paidAt, createdAt), nil
}

// List returns payments newest-first, optionally filtered by reservation.
func (r *PaymentRepository) List(ctx context.Context, reservationID *uuid.UUID) ([]*queries.PaymentView, error) {
	sql := `SELECT ` + paymentColumns + ` FROM payments`
	args := []any{}
	if reservationID != nil {
		sql += ` WHERE reservation_id = $1`
		args = append(args, *reservationID)
	}
	sql += ` ORDER BY paid_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	var views []*queries.PaymentView
	for rows.Next() {
		var v queries.PaymentView
		if err := rows.Scan(
			&v.ID, &v.ReservationID, &v.CustomerID, &v.AmountCents, &v.Currency,
			&v.Method, &v.Status, &v.TransactionID, &v.PaidAt, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return views, nil
}

// SumPaidBetween totals Paid payments whose paid_at falls inside the window.
func (r *PaymentRepository) SumPaidBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(sum(amount_cents), 0) FROM payments
		 WHERE status = 'Paid' AND paid_at BETWEEN $1 AND $2`,
		start, end,
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum paid payments", err)
	}
	return total, nil
}
