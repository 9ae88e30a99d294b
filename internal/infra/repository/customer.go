package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/customer"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

func (r *CustomerRepository) Insert(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (id, first_name, last_name, email, phone) VALUES ($1, $2, $3, $4, $5)`,
		c.ID(), c.FirstName(), c.LastName(), c.Email(), c.Phone(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET first_name = $2, last_name = $3, email = $4, phone = $5, updated_at = now() WHERE id = $1`,
		c.ID(), c.FirstName(), c.LastName(), c.Email(), c.Phone(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("customer has reservations or payments", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var (
		cid                  uuid.UUID
		first, last          string
		email, phone         string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, phone, created_at, updated_at FROM customers WHERE id = $1`, id,
	).Scan(&cid, &first, &last, &email, &phone, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return customer.Reconstruct(cid, first, last, email, phone, createdAt, updatedAt), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, email, phone, created_at, updated_at
		 FROM customers ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var views []*queries.CustomerView
	for rows.Next() {
		var v queries.CustomerView
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customers", err)
	}
	return views, nil
}
