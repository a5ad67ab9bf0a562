package app

import (
	"errors"
	"io/fs"
	"sync"

	"release-gantt/internal/chart"
	"release-gantt/internal/gui"
	"release-gantt/internal/logger"
	"release-gantt/internal/pipeline"

	"fyne.io/fyne/v2"
)

type Handlers struct {
	coordinator pipeline.ChartCoordinator
	guiManager  *gui.Manager
	logger      logger.Logger
	quit        func()

	mu  sync.Mutex
	err error
}

func NewHandlers(coord pipeline.ChartCoordinator, gm *gui.Manager, log logger.Logger, quit func()) *Handlers {
	return &Handlers{
		coordinator: coord,
		guiManager:  gm,
		logger:      log,
		quit:        quit,
	}
}

// HandleStartup loads input directly when configured, otherwise asks the user
// to pick releases.csv.
func (h *Handlers) HandleStartup(input string) {
	if input != "" {
		h.handlePath(input)
		return
	}

	h.guiManager.UpdateStatus("Select " + pipeline.ReleaseFileName)
	h.guiManager.OpenFile("", h.HandleSelection)
}

// HandleSelection receives the file dialog result. Cancelling or picking any
// file other than releases.csv ends the run quietly.
func (h *Handlers) HandleSelection(reader fyne.URIReadCloser, err error) {
	if err != nil {
		h.logger.Error("Handlers", "file selection failed", err, nil)
		h.quit()
		return
	}
	if reader == nil {
		h.logger.Debug("Handlers", "selection cancelled", nil)
		h.quit()
		return
	}
	if !pipeline.IsReleaseFile(reader.URI().Name()) {
		reader.Close()
		h.logger.Debug("Handlers", "selection is not a release file", map[string]interface{}{
			"name": reader.URI().Name(),
		})
		h.quit()
		return
	}

	h.guiManager.UpdateStatus("Loading releases...")
	layout, err := h.coordinator.PrepareURI(reader)
	h.show(layout, err)
}

func (h *Handlers) handlePath(path string) {
	if !pipeline.IsReleaseFile(path) {
		h.logger.Debug("Handlers", "input is not a release file", map[string]interface{}{
			"path": path,
		})
		h.quit()
		return
	}

	layout, err := h.coordinator.PrepareFile(path)
	if isOpenError(err) {
		h.logger.Error("Handlers", "release file could not be opened", err, map[string]interface{}{
			"path": path,
		})
		h.quit()
		return
	}
	h.show(layout, err)
}

func (h *Handlers) show(layout *chart.Layout, err error) {
	if err != nil {
		h.fail("Release Load Error", err)
		return
	}
	h.guiManager.ShowChart(layout)
}

// fail records err as the result of the run and quits once the user has
// seen it.
func (h *Handlers) fail(title string, err error) {
	h.mu.Lock()
	h.err = err
	h.mu.Unlock()

	h.guiManager.ShowError(title, err, h.quit)
}

// Err is the failure that ended the run, or nil.
func (h *Handlers) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func isOpenError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
