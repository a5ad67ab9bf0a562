package pipeline

import (
	"path/filepath"
	"strings"
	"testing"

	"release-gantt/internal/chart"
	"release-gantt/internal/logger"
	"release-gantt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowNames(l *chart.Layout) []string {
	names := make([]string, len(l.Rows))
	for i, row := range l.Rows {
		names[i] = row.Name
	}
	return names
}

func TestCoordinatorPrepareFile(t *testing.T) {
	coord := NewCoordinator(NewLoader(logger.NopLogger{}), models.SortByOpenDate, logger.NopLogger{})

	layout, err := coord.PrepareFile(filepath.Join("testdata", "releases.csv"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Spring Patch", `"Winter, Final"`, "Orphan"}, rowNames(layout))
	assert.Equal(t, "SORTED BY OPEN DATE.", layout.Caption)
	assert.Equal(t, "2023-12-01", layout.Start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-01", layout.End.Format("2006-01-02"))
	assert.True(t, layout.Rows[0].HasBar)
	assert.False(t, layout.Rows[2].HasBar)
}

func TestCoordinatorCompletionOrder(t *testing.T) {
	input := strings.Join([]string{
		"header",
		"a,A,t,s,2023-06-01,,,2024-01-01,m,au,x",
		"b,B,t,s,2023-06-01,,,,m,au,x",
		"c,C,t,s,2022-06-01,,,2023-01-01,m,au,x",
	}, "\n")
	coord := NewCoordinator(NewLoader(logger.NopLogger{}), models.SortByCompletionDate, logger.NopLogger{})

	layout, err := coord.Prepare(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "A", "B"}, rowNames(layout))
}

func TestCoordinatorReleasesWithoutRanges(t *testing.T) {
	coord := NewCoordinator(NewLoader(logger.NopLogger{}), models.SortByOpenDate, logger.NopLogger{})

	layout, err := coord.Prepare(strings.NewReader("header\nr,n,t,s,,,,,m,a,x\nq,m,t,s,2024-01-01,,,,m,a,x\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"m", "n"}, rowNames(layout))
	assert.Zero(t, layout.Days)
}

func TestCoordinatorHeaderOnly(t *testing.T) {
	coord := NewCoordinator(NewLoader(logger.NopLogger{}), models.SortByOpenDate, logger.NopLogger{})

	layout, err := coord.Prepare(strings.NewReader("header\n"))
	require.NoError(t, err)

	assert.Empty(t, layout.Rows)
	assert.Zero(t, layout.Days)
}
