package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"release-gantt/internal/config"
	"release-gantt/internal/logger"
	"release-gantt/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terminalConfig(input string) config.Config {
	cfg := config.Default()
	cfg.Renderer = config.RendererTerminal
	cfg.Input = input
	return cfg
}

func TestRunTerminal(t *testing.T) {
	var out bytes.Buffer
	cfg := terminalConfig(writeFile(t, "releases.csv", validCSV))
	cfg.SortMode = "dependency"

	require.NoError(t, RunTerminal(cfg, logger.NopLogger{}, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Winter"))
	assert.True(t, strings.HasPrefix(lines[1], `"Spring, Patch"`))
	assert.Equal(t, "SORTED BY DEPENDENCY DATE.", lines[3])
}

func TestRunTerminalIgnoresOtherFiles(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, RunTerminal(terminalConfig(writeFile(t, "data.csv", validCSV)), logger.NopLogger{}, &out))
	assert.Zero(t, out.Len())

	require.NoError(t, RunTerminal(terminalConfig(filepath.Join(t.TempDir(), "releases.csv")), logger.NopLogger{}, &out))
	assert.Zero(t, out.Len())
}

func TestRunTerminalMalformed(t *testing.T) {
	var out bytes.Buffer

	err := RunTerminal(terminalConfig(writeFile(t, "releases.csv", malformedCSV)), logger.NopLogger{}, &out)

	var lineErr *pipeline.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Contains(t, err.Error(), "line 2")
	assert.Zero(t, out.Len())
}
