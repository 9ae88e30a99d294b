package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
`

func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().String(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

const selectUserSQL = `
SELECT id, email, password_hash, role, is_active, created_at, last_login_at
FROM users
`

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.db.QueryRow(ctx, selectUserSQL+`WHERE email = $1 AND is_active = true`, email.String())
	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, selectUserSQL+`WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		id           uuid.UUID
		rawEmail     string
		passwordHash string
		rawRole      string
		isActive     bool
		createdAt    time.Time
		lastLoginAt  *time.Time
	)
	if err := row.Scan(&id, &rawEmail, &passwordHash, &rawRole, &isActive, &createdAt, &lastLoginAt); err != nil {
		return nil, err
	}
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(rawRole)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(id, email, passwordHash, role, isActive, createdAt, lastLoginAt), nil
}
