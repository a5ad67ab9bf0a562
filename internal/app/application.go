package app

import (
	"release-gantt/internal/config"
	"release-gantt/internal/gui"
	"release-gantt/internal/logger"
	"release-gantt/internal/pipeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Gantt Chart"
	AppID      = "com.releasegantt.chart"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	guiManager  *gui.Manager
	coordinator pipeline.ChartCoordinator
	handlers    *Handlers
	lifecycle   *Lifecycle
	logger      logger.Logger
	config      config.Config
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Debug("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"sort_mode":     mode.String(),
	})

	guiManager := gui.NewManager(window, log, cfg.CellWidth)
	coordinator := pipeline.NewCoordinator(pipeline.NewLoader(log), mode, log)
	lifecycle := NewLifecycle(guiManager, func() { fyne.Do(fyneApp.Quit) }, log)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		guiManager:  guiManager,
		coordinator: coordinator,
		lifecycle:   lifecycle,
		logger:      log,
		config:      cfg,
	}
	application.handlers = NewHandlers(coordinator, guiManager, log, lifecycle.Shutdown)

	log.Debug("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window, asks for the input file and blocks until the app
// quits. The returned error is the failure that ended the run, if any.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Debug("Application", "window closed", nil)
		a.lifecycle.Shutdown()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.handlers.HandleStartup(a.config.Input)
	})
	a.lifecycle.Listen()

	a.logger.Debug("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return a.handlers.Err()
}
