package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Info(t *testing.T) {
	runID := Setup(LevelInfo)

	_, err := uuid.Parse(runID)
	require.NoError(t, err)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestSetup_Debug(t *testing.T) {
	defer Setup(LevelInfo)

	Setup(LevelDebug)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestSetup_FreshRunID(t *testing.T) {
	assert.NotEqual(t, Setup(LevelInfo), Setup(LevelInfo))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelInfo, "run-1")

	logger.Debug("hidden")
	logger.Info("Monitoring interface", "interface", "eth0")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "run=run-1")
	assert.Contains(t, out, "interface=eth0")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelDebug, LevelFor(true))
	assert.Equal(t, LevelInfo, LevelFor(false))
}

func TestLevel_Values(t *testing.T) {
	assert.Equal(t, Level(0), LevelInfo)
	assert.Equal(t, Level(1), LevelDebug)
}
