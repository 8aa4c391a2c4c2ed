//go:build unit

package queries_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"festivo/internal/domain/payment"
	"festivo/internal/domain/user"
	"festivo/internal/infra"
	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/errs"
	"festivo/internal/usecase/queries"
	"festivo/tests/common/builder"
	queriesmock "festivo/tests/mock/queries"
	storagemock "festivo/tests/mock/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReceiptQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	receipts *queriesmock.MockReceiptReader
	payments *queriesmock.MockPaymentReader
	files    *storagemock.MockFileStore
	svc      queries.ReceiptQueries

	actorID uuid.UUID
}

func TestReceiptQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptQueriesTestSuite))
}

func (s *ReceiptQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.receipts = queriesmock.NewMockReceiptReader(s.ctrl)
	s.payments = queriesmock.NewMockPaymentReader(s.ctrl)
	s.files = storagemock.NewMockFileStore(s.ctrl)
	s.svc = queries.NewReceiptQueries(s.receipts, s.payments, s.files)
	s.actorID = uuid.New()
}

func (s *ReceiptQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReceiptQueriesTestSuite) ownedPayment() *payment.Payment {
	p, err := builder.NewPaymentBuilder().
		With(func(b *builder.PaymentBuilder) { b.UserID = s.actorID }).
		BuildDomain(clock.NewMockClock(time.Now()))
	require.NoError(s.T(), err)
	return p
}

func (s *ReceiptQueriesTestSuite) TestGetByPayment() {
	s.Run("returns the view when the stored file is present", func() {
		paymentID := uuid.New()
		view := builder.NewReceiptBuilder().BuildReadModel()

		s.payments.EXPECT().FindByID(gomock.Any(), paymentID).Return(s.ownedPayment(), nil)
		s.receipts.EXPECT().ViewByPaymentID(gomock.Any(), paymentID).Return(view, nil)
		s.files.EXPECT().Exists(gomock.Any(), view.FilePath).Return(true, nil)

		got, err := s.svc.GetByPayment(s.T().Context(), s.actorID, user.RoleCustomer, paymentID)
		require.NoError(s.T(), err)
		require.Equal(s.T(), view, got)
	})

	s.Run("reports a missing file even though the row exists", func() {
		paymentID := uuid.New()
		view := builder.NewReceiptBuilder().BuildReadModel()

		s.payments.EXPECT().FindByID(gomock.Any(), paymentID).Return(s.ownedPayment(), nil)
		s.receipts.EXPECT().ViewByPaymentID(gomock.Any(), paymentID).Return(view, nil)
		s.files.EXPECT().Exists(gomock.Any(), view.FilePath).Return(false, nil)

		got, err := s.svc.GetByPayment(s.T().Context(), s.actorID, user.RoleCustomer, paymentID)
		require.ErrorIs(s.T(), err, errs.ErrReceiptFileMissing)
		require.Nil(s.T(), got)
	})

	s.Run("admin skips the ownership lookup but not the file check", func() {
		paymentID := uuid.New()
		view := builder.NewReceiptBuilder().BuildReadModel()

		s.receipts.EXPECT().ViewByPaymentID(gomock.Any(), paymentID).Return(view, nil)
		s.files.EXPECT().Exists(gomock.Any(), view.FilePath).Return(false, nil)

		_, err := s.svc.GetByPayment(s.T().Context(), uuid.New(), user.RoleAdmin, paymentID)
		require.ErrorIs(s.T(), err, errs.ErrReceiptFileMissing)
	})

	s.Run("missing receipt row maps to not found", func() {
		paymentID := uuid.New()

		s.payments.EXPECT().FindByID(gomock.Any(), paymentID).Return(s.ownedPayment(), nil)
		s.receipts.EXPECT().ViewByPaymentID(gomock.Any(), paymentID).
			Return(nil, infra.WrapRepoErr("no rows", errors.New("no rows"), infra.KindNotFound))

		_, err := s.svc.GetByPayment(s.T().Context(), s.actorID, user.RoleCustomer, paymentID)
		require.ErrorIs(s.T(), err, errs.ErrReceiptNotFound)
	})

	s.Run("another customer's payment is forbidden", func() {
		paymentID := uuid.New()
		other, err := builder.NewPaymentBuilder().BuildDomain(clock.NewMockClock(time.Now()))
		require.NoError(s.T(), err)

		s.payments.EXPECT().FindByID(gomock.Any(), paymentID).Return(other, nil)

		_, err = s.svc.GetByPayment(s.T().Context(), s.actorID, user.RoleCustomer, paymentID)
		require.ErrorIs(s.T(), err, errs.ErrForbidden)
	})
}

func (s *ReceiptQueriesTestSuite) TestDownload() {
	s.Run("streams the stored file", func() {
		rc := builder.NewReceiptBuilder().BuildDomain()

		s.receipts.EXPECT().FindByID(gomock.Any(), rc.ID()).Return(rc, nil)
		s.payments.EXPECT().FindByID(gomock.Any(), rc.PaymentID()).Return(s.ownedPayment(), nil)
		s.files.EXPECT().Open(gomock.Any(), rc.FilePath()).
			Return(io.NopCloser(strings.NewReader("jpeg bytes")), nil)

		got, err := s.svc.Download(s.T().Context(), s.actorID, user.RoleCustomer, rc.ID())
		require.NoError(s.T(), err)
		defer got.Content.Close()

		require.Equal(s.T(), rc.FileName(), got.FileName)
		require.Equal(s.T(), rc.FileType(), got.FileType)
		body, err := io.ReadAll(got.Content)
		require.NoError(s.T(), err)
		require.Equal(s.T(), "jpeg bytes", string(body))
	})

	s.Run("file gone from storage surfaces as missing", func() {
		rc := builder.NewReceiptBuilder().BuildDomain()

		s.receipts.EXPECT().FindByID(gomock.Any(), rc.ID()).Return(rc, nil)
		s.payments.EXPECT().FindByID(gomock.Any(), rc.PaymentID()).Return(s.ownedPayment(), nil)
		s.files.EXPECT().Open(gomock.Any(), rc.FilePath()).
			Return(nil, errs.Mark(errors.New("file does not exist"), errs.ErrReceiptFileMissing))

		got, err := s.svc.Download(s.T().Context(), s.actorID, user.RoleCustomer, rc.ID())
		require.ErrorIs(s.T(), err, errs.ErrReceiptFileMissing)
		require.Nil(s.T(), got)
	})

	s.Run("unknown receipt maps to not found", func() {
		receiptID := uuid.New()

		s.receipts.EXPECT().FindByID(gomock.Any(), receiptID).
			Return(nil, infra.WrapRepoErr("no rows", errors.New("no rows"), infra.KindNotFound))

		_, err := s.svc.Download(s.T().Context(), s.actorID, user.RoleCustomer, receiptID)
		require.ErrorIs(s.T(), err, errs.ErrReceiptNotFound)
	})
}
