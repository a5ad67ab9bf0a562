package pipeline

import (
	"io"

	"release-gantt/internal/chart"
	"release-gantt/internal/models"

	"fyne.io/fyne/v2"
)

// ReleaseLoader reads release records from the supported sources
type ReleaseLoader interface {
	Load(r io.Reader) ([]models.Release, error)
	LoadURI(reader fyne.URIReadCloser) ([]models.Release, error)
	LoadFile(path string) ([]models.Release, error)
}

// ChartCoordinator turns an input file into a laid out chart
type ChartCoordinator interface {
	Prepare(r io.Reader) (*chart.Layout, error)
	PrepareURI(reader fyne.URIReadCloser) (*chart.Layout, error)
	PrepareFile(path string) (*chart.Layout, error)
	Mode() models.SortMode
}

var (
	_ ReleaseLoader    = (*Loader)(nil)
	_ ChartCoordinator = (*Coordinator)(nil)
)
