package impl

import (
	"io"
	"log/slog"
	"testing"

	"shoply/config"
	domainerrors "shoply/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{
			DefaultShippingFee: 60,
		},
		Inventory: &config.InventoryConfig{
			RunningLowThreshold: 5,
		},
	}

	return cfg
}

// assertAppErrorCode checks the business error code. Detailed errors are
// copies of their sentinel, so code comparison is the reliable check.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
}
