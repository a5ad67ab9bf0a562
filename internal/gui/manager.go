package gui

import (
	"os"

	"release-gantt/internal/chart"
	"release-gantt/internal/gui/components"
	"release-gantt/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	chartView *components.ChartView
	statusBar *components.StatusBar
}

func NewManager(window fyne.Window, log logger.Logger, cellWidth float32) *Manager {
	statusBar := components.NewStatusBar()
	chartView := components.NewChartView(cellWidth, statusBar.SetDetail)

	manager := &Manager{
		window:    window,
		logger:    log,
		chartView: chartView,
		statusBar: statusBar,
	}

	log.Debug("GUIManager", "initialized", map[string]interface{}{
		"cell_width": cellWidth,
		"row_height": components.RowHeight,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		nil, nil,
		container.NewVScroll(m.chartView.GetContainer()),
	)
}

func (m *Manager) ChartView() *components.ChartView {
	return m.chartView
}

func (m *Manager) StatusBar() *components.StatusBar {
	return m.statusBar
}

// ShowChart displays a laid out chart and titles the window after its order.
func (m *Manager) ShowChart(l *chart.Layout) {
	m.chartView.SetLayout(l)
	m.statusBar.SetCount(len(l.Rows))
	m.statusBar.SetStatus(l.Caption)

	m.logger.Debug("GUIManager", "chart displayed", map[string]interface{}{
		"rows": len(l.Rows),
		"days": l.Days,
	})
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

// ShowError reports err in a dialog and calls onClosed once it is dismissed.
func (m *Manager) ShowError(title string, err error, onClosed func()) {
	m.logger.Error("GUIManager", "error dialog shown", err, map[string]interface{}{
		"title": title,
	})

	d := dialog.NewError(err, m.window)
	if onClosed != nil {
		d.SetOnClosed(onClosed)
	}
	d.Show()
}

// OpenFile shows the file picker for CSV files, starting in dir when it can
// be listed.
func (m *Manager) OpenFile(dir string, callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, m.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))

	if dir == "" {
		dir, _ = os.Getwd()
	}
	if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
		d.SetLocation(lister)
	} else {
		m.logger.Debug("GUIManager", "start directory unavailable", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
	}

	d.Resize(fyne.NewSize(800, 600))
	d.Show()
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Debug("GUIManager", "shutdown initiated", nil)
}
