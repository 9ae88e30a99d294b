package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleGuest Role = "guest"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff, RoleGuest:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

type Password struct {
	value string
}

const minPasswordLength = 8

func NewPassword(raw string) (Password, error) {
	if len(raw) < minPasswordLength {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: raw}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
	lastLoginAt  *time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func Reconstruct(id uuid.UUID, email Email, passwordHash string, role Role, isActive bool, createdAt time.Time, lastLoginAt *time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		lastLoginAt:  lastLoginAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) LastLogin() *time.Time  { return u.lastLoginAt }
func (u *User) IsAdmin() bool          { return u.role == RoleAdmin }
