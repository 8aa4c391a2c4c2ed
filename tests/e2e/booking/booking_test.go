//go:build e2e

package booking_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	reqdto "festivo/internal/handler/dto/request"
	resdto "festivo/internal/handler/dto/response"
	"festivo/tests/common/builder"
	"festivo/tests/common/dbtest"
	"festivo/tests/common/httptest"
	"festivo/tests/e2e"
	"festivo/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "Ana Reyes", "ana@example.com", "customer")
	dbtest.CreateTestUser(s.T(), s.DB, "Ben Cruz", "ben@example.com", "customer")
	dbtest.CreateTestUser(s.T(), s.DB, "Admin One", "admin@example.com", "admin")
}

func (s *bookingSuite) createReservation(cookies []*http.Cookie, packageID uuid.UUID) resdto.ReservationResponse {
	t := s.T()

	reqBody := builder.NewReservationBuilder().BuildCreateDTO(packageID)
	rec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/reservations", reqBody, cookies, "")

	var created resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
	return created
}

func (s *bookingSuite) TestReservationLifecycle() {
	s.Run("book, approve, pay with gcash and settle", func() {
		t := s.T()

		customer := helper.Login(t, s.Router, "ana@example.com", "password123")
		admin := helper.Login(t, s.Router, "admin@example.com", "password123")
		packageID := dbtest.DefaultPackageID(t, s.DB)

		// The catalog only lists active packages
		listRec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/packages", nil, "")
		var packages []resdto.PackageResponse
		httptest.AssertSuccessResponse(t, listRec, http.StatusOK, &packages)
		require.Len(t, packages, 2)

		created := s.createReservation(customer, packageID)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, "In Progress", created.PaymentStatus)
		// customization stays within the budget, so the base price is the total
		require.True(t, created.TotalAmount.Equal(decimal.NewFromInt(50000)),
			"unexpected total %s", created.TotalAmount)

		// Another customer cannot read it
		other := helper.Login(t, s.Router, "ben@example.com", "password123")
		forbiddenRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/reservations/"+created.ID.String(), nil, other, "")
		require.Equal(t, http.StatusForbidden, forbiddenRec.Code)

		// Admin approves
		approveRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPatch,
			"/api/admin/reservations/"+created.ID.String()+"/status",
			map[string]any{"status": "approved"}, admin, "")
		require.Equal(t, http.StatusNoContent, approveRec.Code)

		// Approving twice conflicts
		againRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPatch,
			"/api/admin/reservations/"+created.ID.String()+"/status",
			map[string]any{"status": "approved"}, admin, "")
		require.Equal(t, http.StatusConflict, againRec.Code)

		// Customer pays via gcash
		payReq := reqdto.CreatePaymentRequest{
			ReservationID:   created.ID,
			PaymentMethod:   "gcash",
			ReferenceNumber: strPtr("GC-20260815-0042"),
			MobileNumber:    strPtr("0917-555-0101"),
		}
		payRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/payments", payReq, customer, "")
		var payment resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, payRec, http.StatusCreated, &payment)
		require.Equal(t, "In Progress", payment.Status)
		require.Equal(t, "PHP", payment.Currency)
		require.True(t, payment.Amount.Equal(created.TotalAmount))
		require.True(t, strings.HasPrefix(payment.TransactionID, "TXN-"))
		require.Nil(t, payment.PaidAt)

		// Only one payment per reservation
		dupRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/payments", payReq, customer, "")
		require.Equal(t, http.StatusConflict, dupRec.Code)

		// Admin settles the payment
		settleRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPatch,
			"/api/admin/payments/"+payment.ID.String()+"/status",
			map[string]any{"status": "Paid"}, admin, "")
		require.Equal(t, http.StatusNoContent, settleRec.Code)

		paidRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/reservations/"+created.ID.String()+"/payment", nil, customer, "")
		var paid resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, paidRec, http.StatusOK, &paid)
		require.Equal(t, "Paid", paid.Status)
		require.NotNil(t, paid.PaidAt)

		// The reservation mirrors the payment status
		resRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/reservations/"+created.ID.String(), nil, customer, "")
		var reserved resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, resRec, http.StatusOK, &reserved)
		require.Equal(t, "Paid", reserved.PaymentStatus)
	})

	s.Run("cash settles immediately", func() {
		t := s.T()

		customer := helper.Login(t, s.Router, "ana@example.com", "password123")
		packageID := dbtest.DefaultPackageID(t, s.DB)
		created := s.createReservation(customer, packageID)

		payReq := reqdto.CreatePaymentRequest{
			ReservationID: created.ID,
			PaymentMethod: "cash",
		}
		payRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/payments", payReq, customer, "")
		var payment resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, payRec, http.StatusCreated, &payment)
		require.Equal(t, "Paid", payment.Status)
		require.NotNil(t, payment.PaidAt)
	})

	s.Run("gcash without reference details reports the fields", func() {
		t := s.T()

		customer := helper.Login(t, s.Router, "ana@example.com", "password123")
		packageID := dbtest.DefaultPackageID(t, s.DB)
		created := s.createReservation(customer, packageID)

		payReq := reqdto.CreatePaymentRequest{
			ReservationID: created.ID,
			PaymentMethod: "gcash",
		}
		payRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/payments", payReq, customer, "")
		httptest.AssertFieldError(t, payRec, "reference_number")
		httptest.AssertFieldError(t, payRec, "mobile_number")
	})

	s.Run("food outside the package menu is rejected", func() {
		t := s.T()

		customer := helper.Login(t, s.Router, "ana@example.com", "password123")
		packageID := dbtest.DefaultPackageID(t, s.DB)

		reqBody := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.SelectedFoods = []string{"lechon belly", "unknown dish"}
			}).
			BuildCreateDTO(packageID)

		rec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/reservations", reqBody, customer, "")
		httptest.AssertFieldError(t, rec, "selected_foods")
	})
}

func (s *bookingSuite) TestReceiptAndRevenue() {
	s.Run("upload, verify, download, and aggregate", func() {
		t := s.T()

		customer := helper.Login(t, s.Router, "ana@example.com", "password123")
		admin := helper.Login(t, s.Router, "admin@example.com", "password123")
		packageID := dbtest.DefaultPackageID(t, s.DB)
		created := s.createReservation(customer, packageID)

		payReq := reqdto.CreatePaymentRequest{
			ReservationID:   created.ID,
			PaymentMethod:   "bank_transfer",
			ReferenceNumber: strPtr("BT-20260815-0099"),
		}
		payRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/payments", payReq, customer, "")
		var payment resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, payRec, http.StatusCreated, &payment)

		content := []byte("fake image bytes")
		upRec := helper.UploadFile(t, s.Router, "/api/payments/"+payment.ID.String()+"/receipt",
			"receipt", "deposit-slip.jpg", "image/jpeg", content, customer)
		var receipt resdto.ReceiptResponse
		httptest.AssertSuccessResponse(t, upRec, http.StatusCreated, &receipt)
		require.Equal(t, "deposit-slip.jpg", receipt.FileName)
		require.False(t, receipt.Verified)

		// One receipt per payment
		dupRec := helper.UploadFile(t, s.Router, "/api/payments/"+payment.ID.String()+"/receipt",
			"receipt", "again.jpg", "image/jpeg", content, customer)
		require.Equal(t, http.StatusConflict, dupRec.Code)

		// Unsupported file types never reach storage
		badRec := helper.UploadFile(t, s.Router, "/api/payments/"+payment.ID.String()+"/receipt",
			"receipt", "animation.gif", "image/gif", content, customer)
		require.Equal(t, http.StatusUnprocessableEntity, badRec.Code)

		verifyRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost,
			"/api/admin/receipts/"+receipt.ID.String()+"/verify", nil, admin, "")
		require.Equal(t, http.StatusNoContent, verifyRec.Code)

		metaRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/payments/"+payment.ID.String()+"/receipt", nil, customer, "")
		var verified resdto.ReceiptResponse
		httptest.AssertSuccessResponse(t, metaRec, http.StatusOK, &verified)
		require.True(t, verified.Verified)
		require.NotNil(t, verified.VerifiedAt)

		dlRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/receipts/"+receipt.ID.String()+"/download", nil, customer, "")
		require.Equal(t, http.StatusOK, dlRec.Code)
		require.Equal(t, content, dlRec.Body.Bytes())

		// Revenue counts only settled payments
		totalRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/admin/revenue/total", nil, admin, "")
		var total resdto.TotalRevenueResponse
		httptest.AssertSuccessResponse(t, totalRec, http.StatusOK, &total)
		require.EqualValues(t, 0, total.PaymentCount)

		settleRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPatch,
			"/api/admin/payments/"+payment.ID.String()+"/status",
			map[string]any{"status": "Paid"}, admin, "")
		require.Equal(t, http.StatusNoContent, settleRec.Code)

		totalRec = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/admin/revenue/total", nil, admin, "")
		httptest.AssertSuccessResponse(t, totalRec, http.StatusOK, &total)
		require.EqualValues(t, 1, total.PaymentCount)
		require.True(t, total.Total.Equal(payment.Amount))

		methodRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/admin/revenue/by-method", nil, admin, "")
		var byMethod []resdto.MethodRevenueResponse
		httptest.AssertSuccessResponse(t, methodRec, http.StatusOK, &byMethod)
		require.Len(t, byMethod, 1)
		require.Equal(t, "bank_transfer", byMethod[0].Method)

		paidListRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/admin/revenue/paid-reservations", nil, admin, "")
		var paidList []resdto.PaidReservationResponse
		httptest.AssertSuccessResponse(t, paidListRec, http.StatusOK, &paidList)
		require.Len(t, paidList, 1)
		require.Equal(t, created.ID, paidList[0].ReservationID)

		// Revenue endpoints are admin only
		deniedRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/admin/revenue/total", nil, customer, "")
		require.Equal(t, http.StatusForbidden, deniedRec.Code)
	})

	s.Run("receipt whose file vanished from storage is not found", func() {
		t := s.T()

		customer := helper.Login(t, s.Router, "ana@example.com", "password123")
		packageID := dbtest.DefaultPackageID(t, s.DB)
		created := s.createReservation(customer, packageID)

		payReq := reqdto.CreatePaymentRequest{
			ReservationID:   created.ID,
			PaymentMethod:   "bank_transfer",
			ReferenceNumber: strPtr("BT-20260815-0100"),
		}
		payRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/payments", payReq, customer, "")
		var payment resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, payRec, http.StatusCreated, &payment)

		upRec := helper.UploadFile(t, s.Router, "/api/payments/"+payment.ID.String()+"/receipt",
			"receipt", "deposit-slip.jpg", "image/jpeg", []byte("fake image bytes"), customer)
		var receipt resdto.ReceiptResponse
		httptest.AssertSuccessResponse(t, upRec, http.StatusCreated, &receipt)

		// Wipe the stored file out from under the row
		stored, err := filepath.Glob(filepath.Join(s.Config.Storage.ReceiptDir, "*"))
		require.NoError(t, err)
		require.NotEmpty(t, stored)
		for _, f := range stored {
			require.NoError(t, os.Remove(f))
		}

		metaRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/payments/"+payment.ID.String()+"/receipt", nil, customer, "")
		httptest.AssertErrorResponse(t, metaRec, http.StatusNotFound, "Receipt file is missing from storage")

		dlRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/receipts/"+receipt.ID.String()+"/download", nil, customer, "")
		httptest.AssertErrorResponse(t, dlRec, http.StatusNotFound, "Receipt file is missing from storage")
	})
}

func strPtr(s string) *string { return &s }
