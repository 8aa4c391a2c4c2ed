//go:build unit

package receipt_test

import (
	"testing"
	"time"

	"festivo/internal/domain/receipt"
	"festivo/internal/pkg/errs"
	"festivo/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int64
		ok          bool
	}{
		{name: "jpeg ok", contentType: "image/jpeg", size: 1024, ok: true},
		{name: "jpg alias ok", contentType: "image/jpg", size: 1024, ok: true},
		{name: "png ok", contentType: "image/png", size: 1024, ok: true},
		{name: "pdf ok", contentType: "application/pdf", size: 1024, ok: true},
		{name: "gif rejected", contentType: "image/gif", size: 1024, ok: false},
		{name: "octet stream rejected", contentType: "application/octet-stream", size: 1024, ok: false},
		{name: "empty file rejected", contentType: "image/png", size: 0, ok: false},
		{name: "exactly at limit ok", contentType: "image/png", size: receipt.MaxFileSize, ok: true},
		{name: "one byte over limit rejected", contentType: "image/png", size: receipt.MaxFileSize + 1, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := receipt.ValidateFile(tc.contentType, tc.size)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			fe, ok := errs.AsFieldErrors(err)
			require.True(t, ok, "expected field errors, got %v", err)
			assert.Contains(t, fe, "receipt")
		})
	}
}

func TestReceiptVerify(t *testing.T) {
	t.Run("new receipt is unverified", func(t *testing.T) {
		r := builder.NewReceiptBuilder().BuildDomain()
		assert.False(t, r.IsVerified())
		assert.Nil(t, r.VerifiedBy())
		assert.Nil(t, r.VerifiedAt())
	})

	t.Run("verify stamps admin and time", func(t *testing.T) {
		r := builder.NewReceiptBuilder().BuildDomain()
		adminID := uuid.New()
		now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

		r.Verify(adminID, now)

		assert.True(t, r.IsVerified())
		require.NotNil(t, r.VerifiedBy())
		assert.Equal(t, adminID, *r.VerifiedBy())
		require.NotNil(t, r.VerifiedAt())
		assert.True(t, r.VerifiedAt().Equal(now))
	})

	t.Run("partially reconstructed receipt is not verified", func(t *testing.T) {
		adminID := uuid.New()
		r := receipt.ReconstructReceipt(
			uuid.New(), uuid.New(), uuid.New(),
			"receipts/x.png", "x.png", "image/png",
			time.Now(), &adminID, nil,
		)
		assert.False(t, r.IsVerified())
	})
}
