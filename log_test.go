package gllab_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gllab"
)

func TestLogLevel(t *testing.T) {
	t.Cleanup(func() { gllab.SetVerbose(false) })
	ctx := context.Background()

	assert.False(t, gllab.Logger().Enabled(ctx, slog.LevelDebug))

	gllab.SetVerbose(true)
	assert.True(t, gllab.Logger().Enabled(ctx, slog.LevelDebug))

	assert.True(t, gllab.SetLogLevel("warn"))
	assert.False(t, gllab.Logger().Enabled(ctx, slog.LevelInfo))

	assert.False(t, gllab.SetLogLevel("chatty"))
	assert.True(t, gllab.Logger().Enabled(ctx, slog.LevelWarn), "unknown name keeps the level")
}
