package api

import (
	"net/http"

	resdto "festivo/internal/handler/dto/response"
	"festivo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// RevenueHandler serves the admin revenue reports. All figures cover Paid
// payments only.
type RevenueHandler struct {
	revenueQueries queries.RevenueQueries
}

func NewRevenueHandler(revenueQueries queries.RevenueQueries) *RevenueHandler {
	return &RevenueHandler{revenueQueries: revenueQueries}
}

// @Summary Total revenue
// @Description Sum of paid payments, optionally bounded by an inclusive date range
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} resdto.TotalRevenueResponse
// @Failure 422 {object} httperr.Response
// @Router /admin/revenue/total [get]
func (h *RevenueHandler) Total(c *gin.Context) {
	start := queryParam(c, "start_date")
	end := queryParam(c, "end_date")

	total, err := h.revenueQueries.Total(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTotalRevenue(total))
}

// @Summary Revenue by payment method
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MethodRevenueResponse
// @Router /admin/revenue/by-method [get]
func (h *RevenueHandler) ByMethod(c *gin.Context) {
	rows, err := h.revenueQueries.ByMethod(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMethodRevenues(rows))
}

// @Summary Revenue by period
// @Description Paid revenue bucketed by day, month, or year
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Param granularity query string false "day, month, or year (default month)"
// @Success 200 {array} resdto.PeriodRevenueResponse
// @Failure 422 {object} httperr.Response
// @Router /admin/revenue/by-period [get]
func (h *RevenueHandler) ByPeriod(c *gin.Context) {
	rows, err := h.revenueQueries.ByPeriod(c.Request.Context(), c.Query("granularity"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPeriodRevenues(rows))
}

// @Summary Paid reservations
// @Description Reservations behind the revenue figures, most recently paid first
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaidReservationResponse
// @Router /admin/revenue/paid-reservations [get]
func (h *RevenueHandler) PaidReservations(c *gin.Context) {
	rows, err := h.revenueQueries.PaidReservations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaidReservations(rows))
}

func queryParam(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok {
		return &v
	}
	return nil
}
