package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMealUnnamed  = errors.New("meal requires a title or both german and english names")
	ErrInvalidPrice = errors.New("meal price cannot be negative")
)

// Meal is a dish in the restaurant catalog. A meal is presentable when it has
// a display title, or a German and an English name for the bilingual menu.
type Meal struct {
	id          uuid.UUID
	title       string
	nameDE      string
	nameEN      string
	priceCents  int64
	category    string
	recommended bool
	imageURL    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMeal(title, nameDE, nameEN string, priceCents int64, category string) (*Meal, error) {
	title = strings.TrimSpace(title)
	nameDE = strings.TrimSpace(nameDE)
	nameEN = strings.TrimSpace(nameEN)

	if err := ValidateMealNames(title, nameDE, nameEN); err != nil {
		return nil, err
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}

	return &Meal{
		id:         uuid.New(),
		title:      title,
		nameDE:     nameDE,
		nameEN:     nameEN,
		priceCents: priceCents,
		category:   strings.TrimSpace(category),
	}, nil
}

// ValidateMealNames enforces the title-or-both-names rule. It is the single
// validation point for the rule; the schema-level CHECK mirrors it only as a
// structural invariant.
func ValidateMealNames(title, nameDE, nameEN string) error {
	if title != "" {
		return nil
	}
	if nameDE != "" && nameEN != "" {
		return nil
	}
	return ErrMealUnnamed
}

func ReconstructMeal(
	id uuid.UUID,
	title, nameDE, nameEN string,
	priceCents int64,
	category string,
	recommended bool,
	imageURL string,
	createdAt, updatedAt time.Time,
) *Meal {
	return &Meal{
		id:          id,
		title:       title,
		nameDE:      nameDE,
		nameEN:      nameEN,
		priceCents:  priceCents,
		category:    category,
		recommended: recommended,
		imageURL:    imageURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (m *Meal) ID() uuid.UUID        { return m.id }
func (m *Meal) Title() string        { return m.title }
func (m *Meal) NameDE() string       { return m.nameDE }
func (m *Meal) NameEN() string       { return m.nameEN }
func (m *Meal) PriceCents() int64    { return m.priceCents }
func (m *Meal) Category() string     { return m.category }
func (m *Meal) Recommended() bool    { return m.recommended }
func (m *Meal) ImageURL() string     { return m.imageURL }
func (m *Meal) CreatedAt() time.Time { return m.createdAt }
func (m *Meal) UpdatedAt() time.Time { return m.updatedAt }

func (m *Meal) Update(title, nameDE, nameEN string, priceCents int64, category string) error {
	title = strings.TrimSpace(title)
	nameDE = strings.TrimSpace(nameDE)
	nameEN = strings.TrimSpace(nameEN)

	if err := ValidateMealNames(title, nameDE, nameEN); err != nil {
		return err
	}
	if priceCents < 0 {
		return ErrInvalidPrice
	}
	m.title = title
	m.nameDE = nameDE
	m.nameEN = nameEN
	m.priceCents = priceCents
	m.category = strings.TrimSpace(category)
	return nil
}

func (m *Meal) ToggleRecommended() {
	m.recommended = !m.recommended
}

func (m *Meal) SetImageURL(url string) {
	m.imageURL = url
}
