package commands

import (
	"context"
	"io"
	"log/slog"

	"festivo/internal/domain/receipt"
	"festivo/internal/domain/user"
	"festivo/internal/infra"
	"festivo/internal/infra/storage"
	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/errs"
	"festivo/internal/usecase/queries"
	"festivo/internal/usecase/shared"

	"github.com/google/uuid"
)

// UploadReceiptInput carries the multipart upload: declared metadata plus the
// file stream.
type UploadReceiptInput struct {
	PaymentID   uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type ReceiptCommands interface {
	// Upload stores the proof-of-payment file and its metadata. Customers may
	// only attach receipts to their own payments.
	Upload(ctx context.Context, input UploadReceiptInput, actorID uuid.UUID, role user.Role) (*queries.ReceiptView, error)
	// Verify stamps the receipt as checked by an admin.
	Verify(ctx context.Context, receiptID, adminID uuid.UUID) error
}

type receiptCommandsImpl struct {
	uow   shared.UnitOfWork
	files storage.FileStore
	clock clock.Clock
}

func NewReceiptCommands(uow shared.UnitOfWork, files storage.FileStore, clock clock.Clock) ReceiptCommands {
	return &receiptCommandsImpl{uow: uow, files: files, clock: clock}
}

func (c *receiptCommandsImpl) Upload(
	ctx context.Context,
	input UploadReceiptInput,
	actorID uuid.UUID,
	role user.Role,
) (*queries.ReceiptView, error) {
	if err := receipt.ValidateFile(input.ContentType, input.Size); err != nil {
		return nil, err
	}

	p, err := c.uow.CommandReads().PaymentByID(ctx, input.PaymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !role.IsAdmin() && !p.IsOwnedBy(actorID) {
		return nil, errs.ErrForbidden
	}

	path, err := c.files.Save(ctx, input.FileName, input.Content)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rc := receipt.NewReceipt(p.ID(), p.ReservationID(), path, input.FileName, input.ContentType, c.clock.Now())

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Receipts().Create(ctx, rc)
	})
	if err != nil {
		// The row never landed; drop the orphaned file.
		if removeErr := c.files.Remove(ctx, path); removeErr != nil {
			slog.Warn("failed to remove orphaned receipt file", "path", path, "error", removeErr.Error())
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateReceipt)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.ReceiptView{
		ID:            rc.ID(),
		PaymentID:     rc.PaymentID(),
		ReservationID: rc.ReservationID(),
		FileName:      rc.FileName(),
		FileType:      rc.FileType(),
		UploadedAt:    rc.UploadedAt(),
		Verified:      rc.IsVerified(),
		VerifiedAt:    rc.VerifiedAt(),
	}, nil
}

func (c *receiptCommandsImpl) Verify(ctx context.Context, receiptID, adminID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rc, err := tx.Reads().ReceiptByID(ctx, receiptID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReceiptNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		now := c.clock.Now()
		rc.Verify(adminID, now)

		if err := tx.Receipts().Verify(ctx, rc.ID(), adminID, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
