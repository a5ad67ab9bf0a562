package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"release-gantt/internal/logger"
)

const DefaultTimeout = 5 * time.Second

type step struct {
	name string
	fn   func()
}

// Manager runs the named shutdown steps once, in the order they were added,
// whether the run ends from the UI or from an OS signal.
type Manager struct {
	steps   []step
	logger  logger.Logger
	timeout time.Duration
	mu      sync.Mutex
	once    sync.Once
	stopped chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:  log,
		timeout: DefaultTimeout,
		stopped: make(chan struct{}),
	}
}

func (m *Manager) Add(name string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, step{name: name, fn: fn})
}

// Listen runs the sequence on SIGINT or SIGTERM. The handler is removed once
// the sequence has run by any path.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Debug("ShutdownManager", "signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.stopped:
		}
	}()
}

// Shutdown runs every step within the timeout. Steps still pending when it
// expires are skipped. Later calls return immediately.
func (m *Manager) Shutdown() {
	m.once.Do(m.run)
}

func (m *Manager) run() {
	close(m.stopped)

	m.mu.Lock()
	steps := append([]step(nil), m.steps...)
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	for _, s := range steps {
		select {
		case <-ctx.Done():
			m.logger.Warning("ShutdownManager", "shutdown timeout exceeded", map[string]interface{}{
				"step": s.name,
			})
			return
		default:
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			s.fn()
		}()

		select {
		case <-done:
			m.logger.Debug("ShutdownManager", "shutdown step completed", map[string]interface{}{
				"step": s.name,
			})
		case <-ctx.Done():
			m.logger.Warning("ShutdownManager", "shutdown step timeout", map[string]interface{}{
				"step": s.name,
			})
		}
	}
}
