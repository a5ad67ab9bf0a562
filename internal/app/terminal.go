package app

import (
	"io"

	"release-gantt/internal/config"
	"release-gantt/internal/logger"
	"release-gantt/internal/pipeline"
	"release-gantt/internal/textchart"
)

// RunTerminal renders the configured input to w without opening a window.
// It follows the desktop rules: a file not named releases.csv or one that
// cannot be opened ends the run without an error.
func RunTerminal(cfg config.Config, log logger.Logger, w io.Writer) error {
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	path := cfg.InputPath()
	if !pipeline.IsReleaseFile(path) {
		log.Debug("Terminal", "input is not a release file", map[string]interface{}{
			"path": path,
		})
		return nil
	}

	coordinator := pipeline.NewCoordinator(pipeline.NewLoader(log), mode, log)
	layout, err := coordinator.PrepareFile(path)
	if isOpenError(err) {
		log.Error("Terminal", "release file could not be opened", err, map[string]interface{}{
			"path": path,
		})
		return nil
	}
	if err != nil {
		return err
	}

	return textchart.Render(w, layout, textchart.Options{DaysPerCell: cfg.DaysPerCell})
}
