package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingName = errors.New("customer requires a first and last name")

type Customer struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func New(firstName, lastName, email, phone string) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}

	return &Customer{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
		email:     strings.TrimSpace(email),
		phone:     strings.TrimSpace(phone),
	}, nil
}

func Reconstruct(id uuid.UUID, firstName, lastName, email, phone string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) Update(firstName, lastName, email, phone string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return ErrMissingName
	}
	c.firstName = firstName
	c.lastName = lastName
	c.email = strings.TrimSpace(email)
	c.phone = strings.TrimSpace(phone)
	return nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) FullName() string     { return c.firstName + " " + c.lastName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
