//go:build unit

package reservation_test

import (
	"testing"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom(t *testing.T) *room.Room {
	t.Helper()
	rm, err := room.NewRoom("Seaside Double", 18900, room.TypeDouble)
	require.NoError(t, err)
	return rm
}

func TestNewReservation(t *testing.T) {
	stay := mustStay(t, day(10), day(12))
	customerID := uuid.New()

	t.Run("confirmed with a fresh number", func(t *testing.T) {
		rm := testRoom(t)

		res, err := reservation.New(rm, room.TypeDouble, stay, customerID, 2)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, rm.ID(), res.RoomID())
		assert.Equal(t, room.TypeDouble, res.RoomType())
		assert.Equal(t, customerID, res.CustomerID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Regexp(t, `^#\d{5}$`, res.Number().String())
	})

	t.Run("declared type must match the room", func(t *testing.T) {
		_, err := reservation.New(testRoom(t), room.TypeSingle, stay, customerID, 1)
		assert.ErrorIs(t, err, reservation.ErrRoomTypeMismatch)
	})

	t.Run("at least one guest", func(t *testing.T) {
		_, err := reservation.New(testRoom(t), room.TypeDouble, stay, customerID, 0)
		assert.ErrorIs(t, err, reservation.ErrInvalidGuests)
	})
}

func TestRegenerateNumber(t *testing.T) {
	res, err := reservation.New(testRoom(t), room.TypeDouble, mustStay(t, day(10), day(12)), uuid.New(), 2)
	require.NoError(t, err)

	// The keyspace has 90000 values; a handful of redraws colliding with the
	// original every time is implausible.
	original := res.Number()
	changed := false
	for range 5 {
		res.RegenerateNumber()
		assert.Regexp(t, `^#\d{5}$`, res.Number().String())
		if res.Number() != original {
			changed = true
			break
		}
	}
	assert.True(t, changed)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical", input: "#12345"},
		{name: "missing hash", input: "12345", wantErr: true},
		{name: "too short", input: "#1234", wantErr: true},
		{name: "too long", input: "#123456", wantErr: true},
		{name: "non-digit", input: "#12a45", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := reservation.ParseNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, n.String())
		})
	}
}

func TestTransitionTo(t *testing.T) {
	res, err := reservation.New(testRoom(t), room.TypeDouble, mustStay(t, day(10), day(12)), uuid.New(), 2)
	require.NoError(t, err)

	require.NoError(t, res.TransitionTo(reservation.StatusCancelled))
	assert.Equal(t, reservation.StatusCancelled, res.Status())
	assert.False(t, res.Status().Blocking())

	// Cancellations can be reversed.
	require.NoError(t, res.TransitionTo(reservation.StatusConfirmed))
	assert.Equal(t, reservation.StatusConfirmed, res.Status())
	assert.True(t, res.Status().Blocking())

	assert.ErrorIs(t, res.TransitionTo(reservation.Status("Archived")), reservation.ErrInvalidStatus)
	assert.Equal(t, reservation.StatusConfirmed, res.Status())
}
