package receipt

import (
	"time"

	"festivo/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxFileSize bounds receipt uploads at 5 MiB.
const MaxFileSize = 5 << 20

var allowedFileTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"application/pdf": {},
}

// ValidateFile checks the declared mime type and size of an upload,
// returning field-keyed errors for the form.
func ValidateFile(contentType string, size int64) error {
	fe := errs.FieldErrors{}

	if _, ok := allowedFileTypes[contentType]; !ok {
		fe.Add("receipt", "file must be a JPEG, PNG, or PDF")
	}
	if size <= 0 {
		fe.Add("receipt", "file is empty")
	} else if size > MaxFileSize {
		fe.Add("receipt", "file exceeds the 5 MB limit")
	}

	if fe.HasErrors() {
		return fe
	}
	return nil
}

// Receipt is an uploaded proof-of-payment file attached to a payment,
// optionally admin-verified.
type Receipt struct {
	id            uuid.UUID
	paymentID     uuid.UUID
	reservationID uuid.UUID
	filePath      string
	fileName      string
	fileType      string
	uploadedAt    time.Time
	verifiedBy    *uuid.UUID
	verifiedAt    *time.Time
}

func NewReceipt(paymentID, reservationID uuid.UUID, filePath, fileName, fileType string, uploadedAt time.Time) *Receipt {
	return &Receipt{
		id:            uuid.New(),
		paymentID:     paymentID,
		reservationID: reservationID,
		filePath:      filePath,
		fileName:      fileName,
		fileType:      fileType,
		uploadedAt:    uploadedAt,
	}
}

func ReconstructReceipt(
	id, paymentID, reservationID uuid.UUID,
	filePath, fileName, fileType string,
	uploadedAt time.Time,
	verifiedBy *uuid.UUID,
	verifiedAt *time.Time,
) *Receipt {
	return &Receipt{
		id:            id,
		paymentID:     paymentID,
		reservationID: reservationID,
		filePath:      filePath,
		fileName:      fileName,
		fileType:      fileType,
		uploadedAt:    uploadedAt,
		verifiedBy:    verifiedBy,
		verifiedAt:    verifiedAt,
	}
}

// Verify stamps the verifying admin and time.
func (r *Receipt) Verify(adminID uuid.UUID, now time.Time) {
	r.verifiedBy = &adminID
	r.verifiedAt = &now
}

// IsVerified holds exactly when both the verifier and timestamp are set.
func (r *Receipt) IsVerified() bool {
	return r.verifiedBy != nil && r.verifiedAt != nil
}

func (r *Receipt) ID() uuid.UUID            { return r.id }
func (r *Receipt) PaymentID() uuid.UUID     { return r.paymentID }
func (r *Receipt) ReservationID() uuid.UUID { return r.reservationID }
func (r *Receipt) FilePath() string         { return r.filePath }
func (r *Receipt) FileName() string         { return r.fileName }
func (r *Receipt) FileType() string         { return r.fileType }
func (r *Receipt) UploadedAt() time.Time    { return r.uploadedAt }
func (r *Receipt) VerifiedBy() *uuid.UUID   { return r.verifiedBy }
func (r *Receipt) VerifiedAt() *time.Time   { return r.verifiedAt }
