package logging_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/SscSPs/fx_deals_warehouse/internal/platform/logging"
	"github.com/stretchr/testify/assert"
)

func TestLoggerRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := logging.WithLogger(context.Background(), logger)

	assert.Same(t, logger, logging.FromCtx(ctx))
}

func TestFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), logging.FromCtx(context.Background()))
}
