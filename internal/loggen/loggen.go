// Package loggen produces canned error log samples for demos.
package loggen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sozercan/health-agent/apimodels"
)

type Scenario struct {
	Source    string
	Templates []string
}

// Scenarios is the fixed set of sample categories.
var Scenarios = []Scenario{
	{
		Source: "Database",
		Templates: []string{
			"ERROR: Database connection timeout",
			"ERROR: Max connections reached: 100/100",
			"CRITICAL: Connection pool exhausted",
		},
	},
	{
		Source: "API",
		Templates: []string{
			"ERROR: API request timeout after 30s",
			"ERROR: Rate limit exceeded: 1000 req/min",
			"WARNING: High latency detected: 2.5s",
		},
	},
	{
		Source: "Memory",
		Templates: []string{
			"ERROR: Memory usage critical: 95%",
			"WARNING: Heap size exceeded threshold",
			"CRITICAL: Out of memory exception",
		},
	},
	{
		Source: "Disk",
		Templates: []string{
			"ERROR: Disk space low: 98% used",
			"CRITICAL: Unable to write to disk",
			"ERROR: I/O operation failed",
		},
	},
	{
		Source: "Network",
		Templates: []string{
			"ERROR: Network connection lost",
			"ERROR: DNS resolution failed",
			"WARNING: High packet loss: 15%",
		},
	},
}

type Generator struct {
	pick func(n int) int
	now  func() time.Time
}

type Option func(*Generator)

// WithPicker replaces the random choice of scenario index in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(g *Generator) { g.pick = pick }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		pick: rand.IntN,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the lines of one randomly chosen scenario stamped with the current time.
func (g *Generator) Generate() apimodels.GeneratedLogs {
	scenario := Scenarios[g.pick(len(Scenarios))]
	now := g.now()
	stamp := now.Format("2006-01-02T15:04:05.000000")

	lines := make([]string, len(scenario.Templates))
	for i, tmpl := range scenario.Templates {
		lines[i] = fmt.Sprintf("[%s] %s", stamp, tmpl)
	}

	return apimodels.GeneratedLogs{
		Logs:      strings.Join(lines, "\n"),
		Source:    scenario.Source,
		Timestamp: stamp,
	}
}
