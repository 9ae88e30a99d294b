//go:build unit

package menu_test

import (
	"testing"

	"hotel-backoffice/internal/domain/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeal(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		nameDE string
		nameEN string
		errIs  error
	}{
		{name: "title only", title: "Chef's Special"},
		{name: "both localized names", nameDE: "Wiener Schnitzel", nameEN: "Viennese Schnitzel"},
		{name: "title and names", title: "Schnitzel", nameDE: "Wiener Schnitzel", nameEN: "Viennese Schnitzel"},
		{name: "nothing", errIs: menu.ErrMealUnnamed},
		{name: "german only", nameDE: "Gulasch", errIs: menu.ErrMealUnnamed},
		{name: "english only", nameEN: "Goulash", errIs: menu.ErrMealUnnamed},
		{name: "whitespace title does not count", title: "   ", nameDE: "Gulasch", errIs: menu.ErrMealUnnamed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := menu.NewMeal(tt.title, tt.nameDE, tt.nameEN, 1250, "main")
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.False(t, m.Recommended())
			assert.Equal(t, int64(1250), m.PriceCents())
		})
	}

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := menu.NewMeal("Soup", "", "", -1, "starter")
		assert.ErrorIs(t, err, menu.ErrInvalidPrice)
	})
}

func TestMealUpdate(t *testing.T) {
	m, err := menu.NewMeal("Soup of the day", "", "", 450, "starter")
	require.NoError(t, err)

	t.Run("update keeps the naming rule", func(t *testing.T) {
		err := m.Update("", "Tagessuppe", "", 500, "starter")
		assert.ErrorIs(t, err, menu.ErrMealUnnamed)
		// Failed updates leave the meal untouched.
		assert.Equal(t, "Soup of the day", m.Title())
		assert.Equal(t, int64(450), m.PriceCents())
	})

	t.Run("valid update applies", func(t *testing.T) {
		require.NoError(t, m.Update("", "Tagessuppe", "Soup of the day", 500, "starter"))
		assert.Empty(t, m.Title())
		assert.Equal(t, "Tagessuppe", m.NameDE())
		assert.Equal(t, int64(500), m.PriceCents())
	})
}

func TestToggleRecommended(t *testing.T) {
	m, err := menu.NewMeal("Steak", "", "", 2900, "main")
	require.NoError(t, err)

	m.ToggleRecommended()
	assert.True(t, m.Recommended())
	m.ToggleRecommended()
	assert.False(t, m.Recommended())
}
