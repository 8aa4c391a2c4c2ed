//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"festivo/internal/domain/payment"
	"festivo/internal/domain/user"
	"festivo/internal/handler/api"
	resdto "festivo/internal/handler/dto/response"
	"festivo/internal/pkg/errs"
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

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)

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

	s.router.GET("/payments/methods", s.handler.ListMethods)
	s.router.POST("/payments", s.handler.CreatePayment)
	s.router.GET("/reservations/:id/payment", s.handler.GetReservationPayment)
	s.router.PATCH("/admin/payments/:id/status", s.handler.UpdatePaymentStatus)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestListMethods() {
	s.Run("success: returns the static method catalog", func() {
		s.mockQueries.EXPECT().Methods(gomock.Any()).
			Return(payment.MethodCatalog("0917-000-0000")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/methods", nil, "")

		var response []resdto.MethodInfoResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 3)

		methods := make([]string, len(response))
		for i, m := range response {
			methods[i] = m.Method
		}
		s.ElementsMatch([]string{"cash", "gcash", "bank_transfer"}, methods)
	})
}

func (s *PaymentHandlerTestSuite) TestCreatePayment() {
	url := "/payments"

	pb := builder.NewPaymentBuilder()
	reqBody := pb.BuildCreateDTO()
	returnView := pb.BuildReadModel()

	s.Run("success: returns 201 Created with the recorded payment", func() {
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), reqBody, s.actorID, s.actorRole).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("gcash", response.Method)
		s.Equal("In Progress", response.Status)
		s.Equal("PHP", response.Currency)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: reservation_id", mutate: testutil.Field("reservation_id", nil)},
			{name: "missing field: payment_method", mutate: testutil.Field("payment_method", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 with field detail when gcash details are missing", func() {
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), reqBody, s.actorID, s.actorRole).
			Return(nil, errs.FieldErrors{
				"reference_number": "reference number is required for gcash payments",
				"mobile_number":    "mobile number is required for gcash payments",
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertFieldError(s.T(), rec, "reference_number")
		httptest.AssertFieldError(s.T(), rec, "mobile_number")
	})

	s.Run("error: 409 Conflict when the reservation already has a payment", func() {
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), reqBody, s.actorID, s.actorRole).
			Return(nil, errs.ErrDuplicatePayment).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "A payment already exists for this reservation")
	})

	s.Run("error: 403 Forbidden when paying someone else's reservation", func() {
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), reqBody, s.actorID, s.actorRole).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You do not have access to this resource")
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), reqBody, s.actorID, s.actorRole).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *PaymentHandlerTestSuite) TestGetReservationPayment() {
	pb := builder.NewPaymentBuilder()
	returnView := pb.BuildReadModel()
	url := "/reservations/" + returnView.ReservationID.String() + "/payment"

	s.Run("success: returns 200 OK with the payment", func() {
		s.mockQueries.EXPECT().GetByReservation(gomock.Any(), s.actorID, s.actorRole, returnView.ReservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.TransactionID, response.TransactionID)
	})

	s.Run("error: 404 Not Found when no payment exists yet", func() {
		s.mockQueries.EXPECT().GetByReservation(gomock.Any(), s.actorID, s.actorRole, returnView.ReservationID).
			Return(nil, errs.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})

	s.Run("error: 403 Forbidden for another customer's payment", func() {
		s.mockQueries.EXPECT().GetByReservation(gomock.Any(), s.actorID, s.actorRole, returnView.ReservationID).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You do not have access to this resource")
	})
}

func (s *PaymentHandlerTestSuite) TestUpdatePaymentStatus() {
	id := uuid.New()
	url := "/admin/payments/" + id.String() + "/status"

	s.Run("success: marks the payment as Paid", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "Paid").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "Paid"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: moves the payment back to In Progress", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "In Progress").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "In Progress"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 for a status outside the canonical pair", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "Pending").
			Return(errs.FieldErrors{"status": "must be In Progress or Paid"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "Pending"}, "bearer-token")
		httptest.AssertFieldError(s.T(), rec, "status")
	})

	s.Run("error: 404 Not Found for unknown payment", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "Paid").
			Return(errs.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "Paid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})
}
