//go:build unit

package payment_test

import (
	"testing"

	"festivo/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodCatalog(t *testing.T) {
	infos := payment.MethodCatalog("0917-000-1111")
	require.Len(t, infos, 3)

	byMethod := map[payment.Method]payment.MethodInfo{}
	for _, info := range infos {
		byMethod[info.Method] = info
	}

	assert.Contains(t, byMethod, payment.MethodCash)
	assert.Contains(t, byMethod, payment.MethodGCash)
	assert.Contains(t, byMethod, payment.MethodBankTransfer)

	assert.Equal(t, "0917-000-1111", byMethod[payment.MethodGCash].AccountNumber)
	assert.Empty(t, byMethod[payment.MethodCash].AccountNumber)
	assert.Empty(t, byMethod[payment.MethodBankTransfer].AccountNumber)
}

func TestMethodRequirements(t *testing.T) {
	assert.True(t, payment.MethodCash.SettlesImmediately())
	assert.False(t, payment.MethodGCash.SettlesImmediately())
	assert.False(t, payment.MethodBankTransfer.SettlesImmediately())

	assert.True(t, payment.MethodGCash.RequiresReference())
	assert.True(t, payment.MethodBankTransfer.RequiresReference())
	assert.False(t, payment.MethodCash.RequiresReference())

	assert.True(t, payment.MethodGCash.RequiresMobileNumber())
	assert.False(t, payment.MethodBankTransfer.RequiresMobileNumber())
}
