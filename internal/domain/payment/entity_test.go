//go:build unit

package payment_test

import (
	"testing"
	"time"

	"festivo/internal/domain/payment"
	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/errs"
	"festivo/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func mockClock() clock.Clock {
	return clock.NewMockClock(fixedNow)
}

func TestNewPayment(t *testing.T) {
	t.Run("cash settles immediately", func(t *testing.T) {
		p, err := builder.NewPaymentBuilder().WithMethod("cash").BuildDomain(mockClock())
		require.NoError(t, err)

		assert.True(t, p.IsPaid())
		require.NotNil(t, p.PaidAt())
		assert.True(t, p.PaidAt().Equal(fixedNow))
	})

	t.Run("gcash starts in progress", func(t *testing.T) {
		p, err := builder.NewPaymentBuilder().WithMethod("gcash").BuildDomain(mockClock())
		require.NoError(t, err)

		assert.True(t, p.IsInProgress())
		assert.Nil(t, p.PaidAt())
	})

	t.Run("bank transfer starts in progress", func(t *testing.T) {
		p, err := builder.NewPaymentBuilder().WithMethod("bank_transfer").BuildDomain(mockClock())
		require.NoError(t, err)

		assert.True(t, p.IsInProgress())
		assert.Nil(t, p.PaidAt())
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := builder.NewPaymentBuilder().WithMethod("paypal").BuildDomain(mockClock())
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})

	t.Run("currency and transaction id are assigned", func(t *testing.T) {
		p, err := builder.NewPaymentBuilder().BuildDomain(mockClock())
		require.NoError(t, err)

		assert.Equal(t, payment.Currency, p.CurrencyCode())
		assert.Regexp(t, `^TXN-[0-9A-F]{16}$`, p.TransactionID())
	})

	t.Run("transaction ids are unique per payment", func(t *testing.T) {
		a, err := builder.NewPaymentBuilder().BuildDomain(mockClock())
		require.NoError(t, err)
		b, err := builder.NewPaymentBuilder().BuildDomain(mockClock())
		require.NoError(t, err)
		assert.NotEqual(t, a.TransactionID(), b.TransactionID())
	})
}

func TestPaymentDetails(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.PaymentBuilder)
		fields []string
	}{
		{
			name:   "gcash requires reference number",
			mutate: func(b *builder.PaymentBuilder) { b.Method = "gcash"; b.ReferenceNumber = nil },
			fields: []string{"reference_number"},
		},
		{
			name:   "gcash requires mobile number",
			mutate: func(b *builder.PaymentBuilder) { b.Method = "gcash"; b.MobileNumber = nil },
			fields: []string{"mobile_number"},
		},
		{
			name: "gcash missing both reports both",
			mutate: func(b *builder.PaymentBuilder) {
				b.Method = "gcash"
				b.ReferenceNumber = nil
				b.MobileNumber = nil
			},
			fields: []string{"reference_number", "mobile_number"},
		},
		{
			name: "blank reference is treated as missing",
			mutate: func(b *builder.PaymentBuilder) {
				blank := "   "
				b.Method = "bank_transfer"
				b.ReferenceNumber = &blank
			},
			fields: []string{"reference_number"},
		},
		{
			name:   "bank transfer does not need a mobile number",
			mutate: func(b *builder.PaymentBuilder) { b.Method = "bank_transfer"; b.MobileNumber = nil },
		},
		{
			name: "cash needs nothing",
			mutate: func(b *builder.PaymentBuilder) {
				b.Method = "cash"
				b.ReferenceNumber = nil
				b.MobileNumber = nil
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewPaymentBuilder().With(tc.mutate).BuildDomain(mockClock())

			if len(tc.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			fe, ok := errs.AsFieldErrors(err)
			require.True(t, ok, "expected field errors, got %v", err)
			for _, f := range tc.fields {
				assert.Contains(t, fe, f)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	build := func(t *testing.T) *payment.Payment {
		t.Helper()
		p, err := builder.NewPaymentBuilder().WithMethod("gcash").BuildDomain(mockClock())
		require.NoError(t, err)
		return p
	}

	t.Run("to Paid stamps paid_at", func(t *testing.T) {
		p := build(t)
		require.NoError(t, p.UpdateStatus(payment.StatusPaid, fixedNow))
		assert.True(t, p.IsPaid())
		require.NotNil(t, p.PaidAt())
		assert.True(t, p.PaidAt().Equal(fixedNow))
	})

	t.Run("back to In Progress clears paid_at", func(t *testing.T) {
		p := build(t)
		require.NoError(t, p.MarkAsPaid(fixedNow))
		require.NoError(t, p.MarkAsInProgress())
		assert.True(t, p.IsInProgress())
		assert.Nil(t, p.PaidAt())
	})

	t.Run("non-canonical value mutates nothing", func(t *testing.T) {
		p := build(t)
		require.NoError(t, p.MarkAsPaid(fixedNow))

		err := p.UpdateStatus(payment.Status("Pending"), fixedNow.Add(time.Hour))
		assert.ErrorIs(t, err, payment.ErrInvalidStatus)
		assert.True(t, p.IsPaid(), "status must be unchanged after a rejected update")
		assert.True(t, p.PaidAt().Equal(fixedNow), "paid_at must be unchanged after a rejected update")
	})

	t.Run("lowercase paid is not canonical", func(t *testing.T) {
		p := build(t)
		assert.ErrorIs(t, p.UpdateStatus(payment.Status("paid"), fixedNow), payment.ErrInvalidStatus)
		assert.True(t, p.IsInProgress())
	})

	t.Run("setting Paid again refreshes paid_at", func(t *testing.T) {
		p := build(t)
		require.NoError(t, p.MarkAsPaid(fixedNow))
		later := fixedNow.Add(48 * time.Hour)
		require.NoError(t, p.MarkAsPaid(later))
		assert.True(t, p.PaidAt().Equal(later))
	})
}
