package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/toheco/tohekit/core/logger"
)

func TestError_NilSafe(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}

func TestComponent_EmptySafe(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Component(""))
	assert.Equal(t, "cart", logger.Component("cart").Value.String())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(2 * time.Second)
	assert.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Duration())
}

func TestKeyAndRequestID_EmptySafe(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Key(""))
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "tohe_cart_guest", logger.Key("tohe_cart_guest").Value.String())
}
