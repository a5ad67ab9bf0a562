package app

import (
	"bytes"
	"testing"

	"release-gantt/internal/config"
	"release-gantt/internal/gui"
	"release-gantt/internal/logger"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	cfg := config.Default()
	cfg.SortMode = "dependency"

	application, err := newApplication(test.NewTempApp(t), cfg, logger.NopLogger{})
	require.NoError(t, err)

	assert.Equal(t, AppName, application.window.Title())
	assert.Equal(t, "dependency", application.coordinator.Mode().String())
	assert.NoError(t, application.handlers.Err())
}

func TestNewApplicationRejectsUnknownMode(t *testing.T) {
	cfg := config.Default()
	cfg.SortMode = "content"

	_, err := newApplication(test.NewTempApp(t), cfg, logger.NopLogger{})
	assert.Error(t, err)
}

func TestLifecycleShutdownOnce(t *testing.T) {
	test.NewTempApp(t)
	gm := gui.NewManager(test.NewTempWindow(t, widget.NewLabel("")), logger.NopLogger{}, 4)

	quits := 0
	lifecycle := NewLifecycle(gm, func() { quits++ }, logger.NopLogger{})

	lifecycle.Shutdown()
	lifecycle.Shutdown()

	assert.Equal(t, 1, quits)
}

func TestCancelledSelectionWritesNothing(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	log := logger.New(&buf, logger.ParseLevel(cfg.LogLevel), false)

	application, err := newApplication(test.NewTempApp(t), cfg, log)
	require.NoError(t, err)
	application.handlers.HandleSelection(nil, nil)

	assert.Zero(t, buf.Len(), buf.String())
}

func TestStartupLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.ParseLevel("debug"), false)

	_, err := newApplication(test.NewTempApp(t), config.Default(), log)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "starting application")
	assert.Contains(t, buf.String(), `"level":"debug"`)
}
