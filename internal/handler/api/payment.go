package api

import (
	"net/http"

	reqdto "festivo/internal/handler/dto/request"
	resdto "festivo/internal/handler/dto/response"
	"festivo/internal/handler/httperr"
	"festivo/internal/usecase/commands"
	"festivo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary List payment methods
// @Description Static reference data for the payment form
// @Tags payments
// @Produce json
// @Success 200 {array} resdto.MethodInfoResponse
// @Router /payments/methods [get]
func (h *PaymentHandler) ListMethods(c *gin.Context) {
	infos := h.paymentQueries.Methods(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromMethodInfos(infos))
}

// @Summary Create payment
// @Description Record a payment for a reservation. Cash settles immediately; gcash and bank transfers start In Progress.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.paymentCommands.CreatePayment(c.Request.Context(), req, userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Get payment for reservation
// @Description Get the payment attached to a reservation; customers see only their own
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/payment [get]
func (h *PaymentHandler) GetReservationPayment(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	reservationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.paymentQueries.GetByReservation(c.Request.Context(), userID, role, reservationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Update payment status
// @Description Move a payment between In Progress and Paid (admin only)
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/payments/{id}/status [patch]
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.paymentCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
