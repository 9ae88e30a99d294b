//go:build unit

package menu_test

import (
	"testing"

	"hotel-backoffice/internal/domain/menu"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeekday(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		day, err := menu.NewWeekday("MONDAY")
		require.NoError(t, err)
		assert.Equal(t, menu.Monday, day)
	})

	t.Run("unknown day", func(t *testing.T) {
		_, err := menu.NewWeekday("someday")
		assert.ErrorIs(t, err, menu.ErrInvalidWeekday)
	})

	t.Run("all seven days parse", func(t *testing.T) {
		for _, day := range menu.Weekdays() {
			parsed, err := menu.NewWeekday(day.String())
			require.NoError(t, err)
			assert.Equal(t, day, parsed)
		}
	})
}

func TestDayMenuAssign(t *testing.T) {
	t.Run("assigning an occupied slot replaces the meal", func(t *testing.T) {
		d := menu.NewDayMenu(menu.Monday)
		first := uuid.New()
		second := uuid.New()

		require.NoError(t, d.Assign(menu.SlotSoup, first))
		require.NoError(t, d.Assign(menu.SlotSoup, second))

		require.NotNil(t, d.SoupID())
		assert.Equal(t, second, *d.SoupID())
	})

	t.Run("slots are independent", func(t *testing.T) {
		d := menu.NewDayMenu(menu.Tuesday)
		soup := uuid.New()
		main := uuid.New()

		require.NoError(t, d.Assign(menu.SlotSoup, soup))
		require.NoError(t, d.Assign(menu.SlotMenu1, main))

		assert.Equal(t, soup, *d.SoupID())
		assert.Equal(t, main, *d.Menu1ID())
		assert.Nil(t, d.Menu2ID())
	})

	t.Run("unknown slot rejected", func(t *testing.T) {
		d := menu.NewDayMenu(menu.Monday)
		assert.ErrorIs(t, d.Assign(menu.Slot("dessert"), uuid.New()), menu.ErrInvalidSlot)
	})

	t.Run("clear slot", func(t *testing.T) {
		d := menu.NewDayMenu(menu.Monday)
		require.NoError(t, d.Assign(menu.SlotMenu2, uuid.New()))
		require.NoError(t, d.ClearSlot(menu.SlotMenu2))
		assert.Nil(t, d.Menu2ID())
	})
}

func TestDayMenuExtras(t *testing.T) {
	t.Run("add and remove", func(t *testing.T) {
		d := menu.NewDayMenu(menu.Friday)
		mealID := uuid.New()

		d.AddExtra(mealID)
		assert.Len(t, d.Extras(), 1)

		require.NoError(t, d.RemoveExtra(mealID))
		assert.Empty(t, d.Extras())
	})

	t.Run("duplicates are ignored", func(t *testing.T) {
		d := menu.NewDayMenu(menu.Friday)
		mealID := uuid.New()

		d.AddExtra(mealID)
		d.AddExtra(mealID)
		assert.Len(t, d.Extras(), 1)
	})

	t.Run("removing an absent meal fails", func(t *testing.T) {
		d := menu.NewDayMenu(menu.Friday)
		assert.ErrorIs(t, d.RemoveExtra(uuid.New()), menu.ErrMealNotOnDay)
	})
}

func TestDayMenuClear(t *testing.T) {
	d := menu.NewDayMenu(menu.Sunday)
	require.NoError(t, d.Assign(menu.SlotSoup, uuid.New()))
	require.NoError(t, d.Assign(menu.SlotMenu1, uuid.New()))
	d.AddExtra(uuid.New())

	d.Clear()

	assert.Nil(t, d.SoupID())
	assert.Nil(t, d.Menu1ID())
	assert.Nil(t, d.Menu2ID())
	assert.Empty(t, d.Extras())
}
