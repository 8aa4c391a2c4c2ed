package api

import (
	"io"
	"net/http"

	resdto "festivo/internal/handler/dto/response"
	"festivo/internal/handler/httperr"
	"festivo/internal/usecase/commands"
	"festivo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receiptCommands commands.ReceiptCommands
	receiptQueries  queries.ReceiptQueries
}

func NewReceiptHandler(receiptCommands commands.ReceiptCommands, receiptQueries queries.ReceiptQueries) *ReceiptHandler {
	return &ReceiptHandler{
		receiptCommands: receiptCommands,
		receiptQueries:  receiptQueries,
	}
}

// @Summary Upload receipt
// @Description Attach a proof-of-payment file (JPEG, PNG, or PDF up to 5 MB) to a payment
// @Tags receipts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param receipt formData file true "Receipt file"
// @Success 201 {object} resdto.ReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments/{id}/receipt [post]
func (h *ReceiptHandler) UploadReceipt(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	paymentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Receipt file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read receipt file", nil)
		return
	}
	defer file.Close()

	input := commands.UploadReceiptInput{
		PaymentID:   paymentID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	}

	view, err := h.receiptCommands.Upload(c.Request.Context(), input, userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReceiptView(view))
}

// @Summary Get receipt metadata
// @Description Get the receipt attached to a payment; customers see only their own
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id}/receipt [get]
func (h *ReceiptHandler) GetPaymentReceipt(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	paymentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.receiptQueries.GetByPayment(c.Request.Context(), userID, role, paymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReceiptView(view))
}

// @Summary Download receipt file
// @Description Stream the stored receipt file; customers see only their own
// @Tags receipts
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Receipt ID"
// @Success 200 {file} binary
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /receipts/{id}/download [get]
func (h *ReceiptHandler) DownloadReceipt(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	receiptID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	dl, err := h.receiptQueries.Download(c.Request.Context(), userID, role, receiptID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer dl.Content.Close()

	c.Header("Content-Disposition", `attachment; filename="`+dl.FileName+`"`)
	c.Header("Content-Type", dl.FileType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, dl.Content)
}

// @Summary Verify receipt
// @Description Mark a receipt as checked (admin only)
// @Tags receipts
// @Security BearerAuth
// @Param id path string true "Receipt ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/receipts/{id}/verify [post]
func (h *ReceiptHandler) VerifyReceipt(c *gin.Context) {
	adminID, _, ok := actor(c)
	if !ok {
		return
	}
	receiptID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.receiptCommands.Verify(c.Request.Context(), receiptID, adminID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
