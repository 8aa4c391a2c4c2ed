//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"festivo/internal/domain/user"
	"festivo/internal/handler/api"
	resdto "festivo/internal/handler/dto/response"
	"festivo/internal/pkg/errs"
	"festivo/internal/usecase/queries"
	"festivo/tests/common/builder"
	"festivo/tests/common/httptest"
	"festivo/tests/common/testutil"
	commandsmock "festivo/tests/mock/commands"
	queriesmock "festivo/tests/mock/queries"

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

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleCustomer

	// Stand in for the auth middleware
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actorID)
			c.Set("user_role", s.actorRole)
		}
		c.Next()
	})

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.ListUserReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.GET("/admin/reservations", s.handler.ListAllReservations)
	s.router.PATCH("/admin/reservations/:id/status", s.handler.UpdateReservationStatus)
	s.router.DELETE("/admin/reservations/:id", s.handler.DeleteReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	packageID := uuid.New()
	reqBody := builder.NewReservationBuilder().BuildCreateDTO(packageID)
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: returns 201 Created with the pending reservation", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, s.actorID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal("In Progress", response.PaymentStatus)
	})

	s.Run("error: 400 Bad Request when package_id missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("package_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 with field detail when domain validation fails", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, s.actorID).
			Return(nil, errs.FieldErrors{"selected_foods": "selected food cost exceeds the package customization budget"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertFieldError(s.T(), rec, "selected_foods")
	})

	s.Run("error: 404 Not Found for unknown package", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, s.actorID).
			Return(nil, errs.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})

	s.Run("error: 422 Unprocessable Entity for inactive package", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, s.actorID).
			Return(nil, errs.ErrPackageInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Package is not available for booking")
	})

	s.Run("error: 500 when the auth context is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildReadModel()
	url := "/reservations/" + returnView.ID.String()

	s.Run("success: returns 200 OK with the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, s.actorRole, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.PackageName, response.PackageName)
	})

	s.Run("error: 403 Forbidden for another customer's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, s.actorRole, returnView.ID).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You do not have access to this resource")
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, s.actorRole, returnView.ID).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

// listItemsFor projects a full view down to the list shape the repos return.
func listItemsFor(v *queries.ReservationView) []queries.ReservationListItem {
	return []queries.ReservationListItem{{
		ID:            v.ID,
		UserID:        v.UserID,
		PackageName:   v.PackageName,
		FullName:      v.FullName,
		EventType:     v.EventType,
		EventDate:     v.EventDate,
		Venue:         v.Venue,
		TotalAmount:   v.TotalAmount,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		CreatedAt:     v.CreatedAt,
	}}
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	own := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: lists the caller's reservations", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID).
			Return(listItemsFor(own), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(own.ID, response[0].ID)
	})

	s.Run("success: admin listing returns every reservation", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return(listItemsFor(own), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations", nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
	})

	s.Run("success: empty list stays an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateReservationStatus() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/status"

	s.Run("success: approves a pending reservation", func() {
		s.mockCommands.EXPECT().ApproveReservation(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "approved"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: declines a pending reservation", func() {
		s.mockCommands.EXPECT().DeclineReservation(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "declined"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 for a status outside approved/declined", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, "bearer-token")
		httptest.AssertFieldError(s.T(), rec, "status")
	})

	s.Run("error: 409 Conflict when the reservation already left pending", func() {
		s.mockCommands.EXPECT().ApproveReservation(gomock.Any(), id).
			Return(errs.ErrReservationNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "approved"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation is no longer pending")
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockCommands.EXPECT().DeclineReservation(gomock.Any(), id).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "declined"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
