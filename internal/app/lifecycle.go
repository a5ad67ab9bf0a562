package app

import (
	"release-gantt/internal/gui"
	"release-gantt/internal/logger"
	"release-gantt/internal/shutdown"
)

// Lifecycle ends the run from any path: window close, a finished selection
// or an OS signal.
type Lifecycle struct {
	shutdown *shutdown.Manager
	logger   logger.Logger
}

// NewLifecycle stops the GUI first and calls quit last.
func NewLifecycle(gm *gui.Manager, quit func(), log logger.Logger) *Lifecycle {
	sm := shutdown.NewManager(log)
	sm.Add("gui manager", gm.Shutdown)
	sm.Add("event loop", quit)

	return &Lifecycle{
		shutdown: sm,
		logger:   log,
	}
}

func (l *Lifecycle) Listen() {
	l.shutdown.Listen()
}

func (l *Lifecycle) Shutdown() {
	l.logger.Debug("Lifecycle", "shutdown requested", nil)
	l.shutdown.Shutdown()
}
