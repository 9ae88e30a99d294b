//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-backoffice/internal/handler/api"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/tests/common/builder"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/common/testutil"
	commandsmock "hotel-backoffice/tests/mock/commands"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/offline-reservations", s.handler.ListReservations)
	s.router.GET("/offline-reservations/check-availability", s.handler.CheckAvailability)
	s.router.GET("/offline-reservations/search/:number", s.handler.SearchByNumber)
	s.router.GET("/offline-reservations/:id", s.handler.GetReservation)
	s.router.POST("/offline-reservations", s.handler.CreateReservation)
	s.router.PATCH("/offline-reservations/:id/status", s.handler.UpdateStatus)
	s.router.DELETE("/offline-reservations/:id", s.handler.DeleteReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.Run("success: returns 200 OK with all reservations", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.ReservationView{view}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offline-reservations", nil, "token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(view.Number, response[0].Number)
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: returns 200 OK for an existing reservation", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offline-reservations/"+view.ID.String(), nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("2026-03-10", response.CheckIn)
		s.Equal("2026-03-12", response.CheckOut)
	})

	s.Run("error: 400 Bad Request for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offline-reservations/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 Not Found for an unknown reservation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offline-reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestSearchByNumber() {
	s.Run("success: returns 200 OK for a known number", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().SearchByNumber(gomock.Any(), "10234").
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offline-reservations/search/10234", nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("#10234", response.Number)
	})

	s.Run("error: 404 Not Found for an unknown number", func() {
		s.mockQueries.EXPECT().SearchByNumber(gomock.Any(), "99999").
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offline-reservations/search/99999", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckAvailability() {
	url := "/offline-reservations/check-availability"

	s.Run("success: reports a free room as available", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), "room-1", "2026-03-10", "2026-03-12").
			Return(true).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?room_id=room-1&check_in=2026-03-10&check_out=2026-03-12", nil, "token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
	})

	s.Run("success: reports an occupied room as unavailable", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), "room-1", "2026-03-10", "2026-03-12").
			Return(false).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?room_id=room-1&check_in=2026-03-10&check_out=2026-03-12", nil, "token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})

	s.Run("error: 400 Bad Request when query parameters are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?room_id=room-1", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check_in and check_out are required")
	})
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/offline-reservations"

	resBuilder := builder.NewReservationBuilder()
	reqBody := resBuilder.BuildDTO()
	returnView := resBuilder.BuildView()

	s.Run("success: returns 201 Created with the stored reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Number, response.Number)
		s.Equal("Confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
			{name: "unknown room_type", mutate: testutil.Field("room_type", "Suite")},
			{name: "malformed check_in", mutate: testutil.Field("check_in", "10.03.2026")},
			{name: "zero guests", mutate: testutil.Field("guests", 0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict when the dates overlap an existing stay", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, commands.ErrRoomUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room is not available for the requested dates")
	})

	s.Run("error: 409 Conflict when the declared room type is wrong", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, commands.ErrRoomTypeMismatch).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room type does not match the selected room")
	})

	s.Run("error: 404 Not Found for an unknown room", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, commands.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 404 Not Found for an unknown customer", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, commands.ErrCustomerNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewReservationBuilder().
		With(func(r *builder.ReservationBuilder) { r.Status = "Cancelled" }).
		BuildView()
	url := "/offline-reservations/" + view.ID.String() + "/status"
	reqBody := map[string]any{"status": "Cancelled"}

	s.Run("success: returns 200 OK with the updated reservation", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, gomock.Any()).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Cancelled", response.Status)
	})

	s.Run("error: 400 Bad Request for an unknown status", func() {
		// Commands attach the sentinel as a mark, not as a wrap cause.
		markedErr := errs.Mark(errs.New("unknown reservation status"), commands.ErrDomainValidation)
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, markedErr).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "Archived"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 404 Not Found for an unknown reservation", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, commands.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	id := uuid.New()
	url := "/offline-reservations/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found when already deleted", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
