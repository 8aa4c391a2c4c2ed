package queries

import (
	"context"
	"io"

	"festivo/internal/domain/payment"
	"festivo/internal/domain/receipt"
	"festivo/internal/domain/user"
	"festivo/internal/infra"
	"festivo/internal/infra/storage"
	"festivo/internal/pkg/errs"

	"github.com/google/uuid"
)

// DownloadedReceipt is an open receipt file plus the metadata needed to serve
// it. The caller owns Content and must close it.
type DownloadedReceipt struct {
	Content  io.ReadCloser
	FileName string
	FileType string
}

type ReceiptQueries interface {
	// GetByPayment enforces ownership: customers see only receipts for their
	// own payments.
	GetByPayment(ctx context.Context, actorID uuid.UUID, role user.Role, paymentID uuid.UUID) (*ReceiptView, error)
	// Download streams the stored file after an ownership check. A receipt row
	// whose file has gone missing from storage is reported distinctly.
	Download(ctx context.Context, actorID uuid.UUID, role user.Role, receiptID uuid.UUID) (*DownloadedReceipt, error)
}

type ReceiptReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error)
	ViewByPaymentID(ctx context.Context, paymentID uuid.UUID) (*ReceiptView, error)
}

type PaymentReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
}

type receiptQueriesImpl struct {
	receipts ReceiptReader
	payments PaymentReader
	files    storage.FileStore
}

func NewReceiptQueries(receipts ReceiptReader, payments PaymentReader, files storage.FileStore) ReceiptQueries {
	return &receiptQueriesImpl{receipts: receipts, payments: payments, files: files}
}

func (q *receiptQueriesImpl) GetByPayment(ctx context.Context, actorID uuid.UUID, role user.Role, paymentID uuid.UUID) (*ReceiptView, error) {
	if err := q.authorizePayment(ctx, actorID, role, paymentID); err != nil {
		return nil, err
	}

	view, err := q.receipts.ViewByPaymentID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReceiptNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// A row can outlive its file; surface that as missing at view time too.
	exists, err := q.files.Exists(ctx, view.FilePath)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, errs.ErrReceiptFileMissing
	}
	return view, nil
}

func (q *receiptQueriesImpl) Download(ctx context.Context, actorID uuid.UUID, role user.Role, receiptID uuid.UUID) (*DownloadedReceipt, error) {
	rc, err := q.receipts.FindByID(ctx, receiptID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReceiptNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := q.authorizePayment(ctx, actorID, role, rc.PaymentID()); err != nil {
		return nil, err
	}

	content, err := q.files.Open(ctx, rc.FilePath())
	if err != nil {
		return nil, err
	}

	return &DownloadedReceipt{
		Content:  content,
		FileName: rc.FileName(),
		FileType: rc.FileType(),
	}, nil
}

func (q *receiptQueriesImpl) authorizePayment(ctx context.Context, actorID uuid.UUID, role user.Role, paymentID uuid.UUID) error {
	if role.IsAdmin() {
		return nil
	}

	p, err := q.payments.FindByID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !p.IsOwnedBy(actorID) {
		return errs.ErrForbidden
	}
	return nil
}
