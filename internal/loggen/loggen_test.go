package loggen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	sources := make([]string, 0, len(Scenarios))
	for _, s := range Scenarios {
		sources = append(sources, s.Source)
		assert.Len(t, s.Templates, 3, "scenario %s", s.Source)
	}
	assert.Equal(t, []string{"Database", "API", "Memory", "Disk", "Network"}, sources)
}

func TestGenerate(t *testing.T) {
	at := time.Date(2024, 12, 8, 14, 32, 15, 123456000, time.UTC)
	g := New(
		WithPicker(func(n int) int { return 3 }),
		WithClock(func() time.Time { return at }),
	)

	out := g.Generate()

	assert.Equal(t, "Disk", out.Source)
	assert.Equal(t, "2024-12-08T14:32:15.123456", out.Timestamp)

	lines := strings.Split(out.Logs, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[2024-12-08T14:32:15.123456] ERROR: Disk space low: 98% used", lines[0])
	assert.Equal(t, "[2024-12-08T14:32:15.123456] CRITICAL: Unable to write to disk", lines[1])
}

func TestGenerate_DefaultPickerStaysInRange(t *testing.T) {
	g := New()
	valid := map[string]bool{}
	for _, s := range Scenarios {
		valid[s.Source] = true
	}

	for i := 0; i < 50; i++ {
		out := g.Generate()
		assert.True(t, valid[out.Source], "unexpected source %q", out.Source)
		assert.Equal(t, 2, strings.Count(out.Logs, "\n"))
	}
}
