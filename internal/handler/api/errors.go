package api

import (
	"net/http"

	"festivo/internal/domain/user"
	"festivo/internal/handler/httperr"
	"festivo/internal/handler/middleware"
	"festivo/internal/pkg/errs"
	"festivo/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errsInvalidStatus = errs.New("invalid status value")

// respondError maps usecase errors onto the HTTP surface. Field validation
// failures carry their per-field detail; everything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	if fe, ok := errs.AsFieldErrors(err); ok {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fe)
		return
	}

	switch {
	case errs.Is(err, errs.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrPaymentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
	case errs.Is(err, errs.ErrReceiptNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Receipt not found", nil)
	case errs.Is(err, errs.ErrReceiptFileMissing):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Receipt file is missing from storage", nil)
	case errs.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You do not have access to this resource", nil)
	case errs.Is(err, errs.ErrDuplicatePayment):
		httperr.AbortWithError(c, http.StatusConflict, err, "A payment already exists for this reservation", nil)
	case errs.Is(err, errs.ErrDuplicateReceipt):
		httperr.AbortWithError(c, http.StatusConflict, err, "A receipt has already been uploaded for this payment", nil)
	case errs.Is(err, errs.ErrReservationNotPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is no longer pending", nil)
	case errs.Is(err, errs.ErrPackageInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Package is not available for booking", nil)
	case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrTokenValidation):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
	case errs.Is(err, commands.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	case errs.Is(err, commands.ErrEmailAlreadyUsed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email is already registered", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// parseUUIDParam reads a UUID path parameter, aborting with 400 on garbage.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// actor returns the authenticated user id and role set by the auth middleware.
func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user id in context"), "Internal server error", nil)
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing user role in context"), "Internal server error", nil)
		return uuid.Nil, "", false
	}
	return id, role, true
}
