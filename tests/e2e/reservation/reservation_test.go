//go:build e2e

package reservation_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/tests/common/dbtest"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL     = "/api/auth/register"
	reservationsURL = "/api/offline-reservations"
)

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

// staffToken registers a fresh staff account and returns its access token.
func (s *reservationSuite) staffToken(email string) string {
	t := s.T()

	reqBody := request.RegisterRequest{Email: email, Password: "password123", Role: "staff"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var res resdto.AuthResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.AccessToken
}

func (s *reservationSuite) createReservation(token string, body request.CreateReservationRequest) (*resdto.ReservationResponse, int) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, body, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var res resdto.ReservationResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return &res, w.Code
}

func (s *reservationSuite) TestReservationLifecycle() {
	s.Run("create, fetch and search a reservation", func() {
		token := s.staffToken("staff@hotel.example")
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seaside Double", "Double", 18900)
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "Ada", "Lovelace", "ada@example.com")

		created, code := s.createReservation(token, request.CreateReservationRequest{
			RoomID:     roomID,
			RoomType:   "Double",
			CheckIn:    "2026-10-01",
			CheckOut:   "2026-10-04",
			CustomerID: customerID,
			Guests:     2,
		})
		s.Equal(http.StatusCreated, code)
		s.Regexp(`^#\d{5}$`, created.Number)
		s.Equal("Confirmed", created.Status)
		s.Equal("Seaside Double", created.RoomTitle)
		s.Equal("Ada Lovelace", created.CustomerName)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil, token)
		var fetched resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)
		s.Equal(created.Number, fetched.Number)

		// Search accepts the number without the leading hash.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/search/"+created.Number[1:], nil, token)
		var found resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &found)
		s.Equal(created.ID, found.ID)
	})

	s.Run("overlapping stays on the same room are rejected", func() {
		token := s.staffToken("staff@hotel.example")
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seaside Double", "Double", 18900)
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "Ada", "Lovelace", "ada@example.com")

		base := request.CreateReservationRequest{
			RoomID:     roomID,
			RoomType:   "Double",
			CheckIn:    "2026-10-01",
			CheckOut:   "2026-10-04",
			CustomerID: customerID,
			Guests:     2,
		}
		_, code := s.createReservation(token, base)
		s.Equal(http.StatusCreated, code)

		overlapping := base
		overlapping.CheckIn = "2026-10-03"
		overlapping.CheckOut = "2026-10-06"
		_, code = s.createReservation(token, overlapping)
		s.Equal(http.StatusConflict, code)

		// Checkout day equals check-in day: the night is free again.
		backToBack := base
		backToBack.CheckIn = "2026-10-04"
		backToBack.CheckOut = "2026-10-06"
		_, code = s.createReservation(token, backToBack)
		s.Equal(http.StatusCreated, code)

		// A different room is unaffected by the first room's bookings.
		otherRoom := base
		otherRoom.RoomID = dbtest.CreateTestRoom(s.T(), s.DB, "Garden Double", "Double", 15900)
		_, code = s.createReservation(token, otherRoom)
		s.Equal(http.StatusCreated, code)
	})

	s.Run("cancelled stays release their dates", func() {
		token := s.staffToken("staff@hotel.example")
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seaside Double", "Double", 18900)
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "Ada", "Lovelace", "ada@example.com")

		base := request.CreateReservationRequest{
			RoomID:     roomID,
			RoomType:   "Double",
			CheckIn:    "2026-10-01",
			CheckOut:   "2026-10-04",
			CustomerID: customerID,
			Guests:     2,
		}
		created, code := s.createReservation(token, base)
		s.Equal(http.StatusCreated, code)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			reservationsURL+"/"+created.ID.String()+"/status",
			request.UpdateReservationStatusRequest{Status: "Cancelled"}, token)
		var cancelled resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cancelled)
		s.Equal("Cancelled", cancelled.Status)

		_, code = s.createReservation(token, base)
		s.Equal(http.StatusCreated, code)
	})

	s.Run("availability endpoint reflects current bookings", func() {
		token := s.staffToken("staff@hotel.example")
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Seaside Double", "Double", 18900)
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "Ada", "Lovelace", "ada@example.com")

		checkURL := reservationsURL + "/check-availability?room_id=" + roomID.String() +
			"&check_in=2026-10-01&check_out=2026-10-04"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, checkURL, nil, token)
		var availability resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &availability)
		s.True(availability.Available)

		_, code := s.createReservation(token, request.CreateReservationRequest{
			RoomID:     roomID,
			RoomType:   "Double",
			CheckIn:    "2026-10-01",
			CheckOut:   "2026-10-04",
			CustomerID: customerID,
			Guests:     2,
		})
		s.Equal(http.StatusCreated, code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, checkURL, nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &availability)
		s.False(availability.Available)

		// An unknown room reads as unavailable rather than erroring.
		unknownURL := reservationsURL + "/check-availability?room_id=" + uuid.NewString() +
			"&check_in=2026-10-01&check_out=2026-10-04"
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, unknownURL, nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &availability)
		s.False(availability.Available)
	})

	s.Run("declared room type must match the room", func() {
		token := s.staffToken("staff@hotel.example")
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, "Attic Single", "Single", 9900)
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "Ada", "Lovelace", "ada@example.com")

		_, code := s.createReservation(token, request.CreateReservationRequest{
			RoomID:     roomID,
			RoomType:   "Double",
			CheckIn:    "2026-10-01",
			CheckOut:   "2026-10-04",
			CustomerID: customerID,
			Guests:     2,
		})
		s.Equal(http.StatusConflict, code)
	})

	s.Run("guest accounts cannot manage reservations", func() {
		reqBody := request.RegisterRequest{Email: "guest@hotel.example", Password: "password123", Role: "guest"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(s.T(), http.StatusCreated, w.Code)

		var res resdto.AuthResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, res.AccessToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

// Exercises the storage contract behind number redraws: a duplicate booking
// number is reported as such without poisoning the enclosing transaction.
func (s *reservationSuite) TestDuplicateNumberKeepsTransactionAlive() {
	s.Run("duplicate insert reports KindDuplicateKey and the tx stays usable", func() {
		t := s.T()
		ctx := context.Background()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Garden Double", "Double", 18900)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Ada", "Lovelace", "ada@example.com")

		tx, err := s.DB.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		repo := repository.NewReservationRepository(tx)
		now := time.Now()
		day := func(d int) time.Time {
			return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
		}
		build := func(number string, checkIn, checkOut time.Time) *reservation.Reservation {
			return reservation.Reconstruct(
				uuid.New(), reservation.Number(number), roomID, room.TypeDouble,
				reservation.ReconstructStay(checkIn, checkOut), customerID, 2,
				reservation.StatusConfirmed, now, now,
			)
		}

		require.NoError(t, repo.Insert(ctx, build("#11111", day(1), day(3))))

		err = repo.Insert(ctx, build("#11111", day(5), day(7)))
		require.Error(t, err)
		s.True(infra.IsKind(err, infra.KindDuplicateKey))

		// A later statement on the same tx must still succeed.
		require.NoError(t, repo.Insert(ctx, build("#22222", day(5), day(7))))
		require.NoError(t, tx.Commit(ctx))
	})
}
