package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sozercan/health-agent/apimodels"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  apimodels.Analysis
	}{
		{
			name:  "all four labels",
			input: "ERROR: X\nCAUSE: Y\nSOLUTION: Z\nSEVERITY: HIGH",
			want:  apimodels.Analysis{Error: "X", Cause: "Y", Solution: "Z", Severity: apimodels.SeverityHigh},
		},
		{
			name:  "no labels",
			input: "The database seems unhappy.\nTry restarting it.",
			want:  apimodels.Analysis{Severity: apimodels.SeverityUnknown},
		},
		{
			name:  "empty input",
			input: "",
			want:  apimodels.Analysis{Severity: apimodels.SeverityUnknown},
		},
		{
			name:  "continuation line",
			input: "ERROR: X\nmore text",
			want:  apimodels.Analysis{Error: "X more text", Severity: apimodels.SeverityUnknown},
		},
		{
			name:  "repeated label overwrites",
			input: "ERROR: X\nERROR: Y",
			want:  apimodels.Analysis{Error: "Y", Severity: apimodels.SeverityUnknown},
		},
		{
			name:  "lowercase label is a continuation",
			input: "CAUSE: pool exhausted\nerror: not a label",
			want:  apimodels.Analysis{Cause: "pool exhausted error: not a label", Severity: apimodels.SeverityUnknown},
		},
		{
			name:  "lowercase label with nothing open is dropped",
			input: "error: ignored\nSEVERITY: LOW",
			want:  apimodels.Analysis{Severity: apimodels.SeverityLow},
		},
		{
			name:  "label mid-line is not recognized",
			input: "SOLUTION: restart\nthen check ERROR: logs",
			want:  apimodels.Analysis{Solution: "restart then check ERROR: logs", Severity: apimodels.SeverityUnknown},
		},
		{
			name:  "indented labels and blank lines",
			input: "\n   ERROR:   Disk full   \n\n  CAUSE: logs not rotated\r\n",
			want:  apimodels.Analysis{Error: "Disk full", Cause: "logs not rotated", Severity: apimodels.SeverityUnknown},
		},
		{
			name:  "multi-line solution",
			input: "SOLUTION: 1. Stop writers\n2. Free space\n3. Restart\nSEVERITY: CRITICAL",
			want:  apimodels.Analysis{Solution: "1. Stop writers 2. Free space 3. Restart", Severity: apimodels.SeverityCritical},
		},
		{
			name:  "empty label value then continuation",
			input: "ERROR:\nconnection refused",
			want:  apimodels.Analysis{Error: " connection refused", Severity: apimodels.SeverityUnknown},
		},
		{
			name:  "severity is kept verbatim",
			input: "SEVERITY: [HIGH]",
			want:  apimodels.Analysis{Severity: "[HIGH]"},
		},
		{
			name:  "space before colon is not a label",
			input: "ERROR : X",
			want:  apimodels.Analysis{Severity: apimodels.SeverityUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseResponse(tt.input))
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	logs := "[2024-12-08 14:32:15] ERROR: Database connection failed\n%s {not a verb}"
	prompt := BuildUserPrompt(logs)

	assert.Contains(t, prompt, logs, "log text must be embedded verbatim")
	for _, label := range []string{"ERROR:", "CAUSE:", "SOLUTION:", "SEVERITY:"} {
		assert.Contains(t, prompt, label)
	}
	assert.Contains(t, SystemPrompt, "LOW, MEDIUM, HIGH, CRITICAL")
}
