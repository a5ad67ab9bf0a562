package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"release-gantt/internal/models"

	"fyne.io/fyne/v2"
)

// ReleaseFileName is the only input file name the tool accepts.
const ReleaseFileName = "releases.csv"

var ErrMissingHeader = errors.New("missing header line")

// LineError reports the data line that could not be turned into a release.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// IsReleaseFile reports whether name is exactly releases.csv after dropping
// any directory part.
func IsReleaseFile(name string) bool {
	return filepath.Base(name) == ReleaseFileName
}

// Loader parses releases.csv content into releases
type Loader struct {
	logger Logger
}

func NewLoader(logger Logger) *Loader {
	return &Loader{logger: logger}
}

// Load discards the header line and parses every following line. The first
// malformed line stops the load.
func (l *Loader) Load(r io.Reader) ([]models.Release, error) {
	started := time.Now()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, ErrMissingHeader
	}

	stats := LoadStats{Lines: 1}
	releases := make([]models.Release, 0)
	for lineNo := 2; scanner.Scan(); lineNo++ {
		stats.Lines++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		release, err := ParseRecord(text)
		if err != nil {
			lineErr := &LineError{Line: lineNo, Text: text, Err: err}
			l.logger.Debug("ReleaseLoader", "malformed release line", map[string]interface{}{
				"line":  lineNo,
				"error": err.Error(),
			})
			return nil, lineErr
		}
		releases = append(releases, release)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read releases: %w", err)
	}

	stats.Records = len(releases)
	stats.Duration = time.Since(started)

	l.logger.Info("ReleaseLoader", "releases loaded", stats.Fields())
	return releases, nil
}

// LoadURI loads from a dialog selection and always closes the reader.
func (l *Loader) LoadURI(reader fyne.URIReadCloser) ([]models.Release, error) {
	defer reader.Close()

	l.logger.Debug("ReleaseLoader", "loading releases", map[string]interface{}{
		"path": reader.URI().Path(),
	})
	return l.Load(reader)
}

// LoadFile loads releases from a path on disk.
func (l *Loader) LoadFile(path string) ([]models.Release, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	l.logger.Debug("ReleaseLoader", "loading releases", map[string]interface{}{
		"path": path,
	})
	return l.Load(f)
}
