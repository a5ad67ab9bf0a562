package pipeline

import (
	"io"

	"release-gantt/internal/chart"
	"release-gantt/internal/models"

	"fyne.io/fyne/v2"
)

// Coordinator runs load, sort and layout as one step
type Coordinator struct {
	loader ReleaseLoader
	mode   models.SortMode
	logger Logger
}

func NewCoordinator(loader ReleaseLoader, mode models.SortMode, logger Logger) *Coordinator {
	return &Coordinator{
		loader: loader,
		mode:   mode,
		logger: logger,
	}
}

func (c *Coordinator) Mode() models.SortMode {
	return c.mode
}

// Prepare loads releases from r, sorts them by the configured mode and lays
// out the chart.
func (c *Coordinator) Prepare(r io.Reader) (*chart.Layout, error) {
	releases, err := c.loader.Load(r)
	if err != nil {
		return nil, err
	}
	return c.arrange(releases), nil
}

// PrepareURI is Prepare for a file picked in the open dialog. The reader is
// closed before returning.
func (c *Coordinator) PrepareURI(reader fyne.URIReadCloser) (*chart.Layout, error) {
	releases, err := c.loader.LoadURI(reader)
	if err != nil {
		return nil, err
	}
	return c.arrange(releases), nil
}

// PrepareFile is Prepare for a path on disk.
func (c *Coordinator) PrepareFile(path string) (*chart.Layout, error) {
	releases, err := c.loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return c.arrange(releases), nil
}

func (c *Coordinator) arrange(releases []models.Release) *chart.Layout {
	models.SortReleases(releases, c.mode)

	layout := chart.Build(releases, c.mode)

	c.logger.Debug("Coordinator", "chart prepared", map[string]interface{}{
		"mode":  c.mode.String(),
		"rows":  len(layout.Rows),
		"days":  layout.Days,
		"start": layout.Start.Format("2006-01-02"),
		"end":   layout.End.Format("2006-01-02"),
	})
	return layout
}
