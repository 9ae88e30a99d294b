package menu

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday")
	ErrInvalidSlot    = errors.New("invalid menu slot")
	ErrMealNotOnDay   = errors.New("meal is not on this day")
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func NewWeekday(s string) (Weekday, error) {
	switch Weekday(strings.ToLower(s)) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(strings.ToLower(s)), nil
	default:
		return "", ErrInvalidWeekday
	}
}

func (w Weekday) String() string {
	return string(w)
}

// Slot is a named singleton position on a day's menu. Assigning a meal to an
// occupied slot replaces the previous meal; only the extras list is unbounded.
type Slot string

const (
	SlotSoup  Slot = "soup"
	SlotMenu1 Slot = "menu1"
	SlotMenu2 Slot = "menu2"
)

func NewSlot(s string) (Slot, error) {
	switch Slot(strings.ToLower(s)) {
	case SlotSoup, SlotMenu1, SlotMenu2:
		return Slot(strings.ToLower(s)), nil
	default:
		return "", ErrInvalidSlot
	}
}

func (s Slot) String() string {
	return string(s)
}

// DayMenu holds one weekday's lineup: three singleton slots plus an unbounded
// extras list.
type DayMenu struct {
	day     Weekday
	soupID  *uuid.UUID
	menu1ID *uuid.UUID
	menu2ID *uuid.UUID
	extras  []uuid.UUID
}

func NewDayMenu(day Weekday) *DayMenu {
	return &DayMenu{day: day}
}

func ReconstructDayMenu(day Weekday, soupID, menu1ID, menu2ID *uuid.UUID, extras []uuid.UUID) *DayMenu {
	return &DayMenu{
		day:     day,
		soupID:  soupID,
		menu1ID: menu1ID,
		menu2ID: menu2ID,
		extras:  extras,
	}
}

func (d *DayMenu) Day() Weekday        { return d.day }
func (d *DayMenu) SoupID() *uuid.UUID  { return d.soupID }
func (d *DayMenu) Menu1ID() *uuid.UUID { return d.menu1ID }
func (d *DayMenu) Menu2ID() *uuid.UUID { return d.menu2ID }
func (d *DayMenu) Extras() []uuid.UUID { return d.extras }

// Assign puts a meal into a singleton slot, replacing any prior occupant.
func (d *DayMenu) Assign(slot Slot, mealID uuid.UUID) error {
	switch slot {
	case SlotSoup:
		d.soupID = &mealID
	case SlotMenu1:
		d.menu1ID = &mealID
	case SlotMenu2:
		d.menu2ID = &mealID
	default:
		return ErrInvalidSlot
	}
	return nil
}

func (d *DayMenu) ClearSlot(slot Slot) error {
	switch slot {
	case SlotSoup:
		d.soupID = nil
	case SlotMenu1:
		d.menu1ID = nil
	case SlotMenu2:
		d.menu2ID = nil
	default:
		return ErrInvalidSlot
	}
	return nil
}

func (d *DayMenu) AddExtra(mealID uuid.UUID) {
	for _, id := range d.extras {
		if id == mealID {
			return
		}
	}
	d.extras = append(d.extras, mealID)
}

func (d *DayMenu) RemoveExtra(mealID uuid.UUID) error {
	for i, id := range d.extras {
		if id == mealID {
			d.extras = append(d.extras[:i], d.extras[i+1:]...)
			return nil
		}
	}
	return ErrMealNotOnDay
}

// Clear empties all slots and the extras list.
func (d *DayMenu) Clear() {
	d.soupID = nil
	d.menu1ID = nil
	d.menu2ID = nil
	d.extras = nil
}
