package analyzer

import (
	"strings"

	"github.com/sozercan/health-agent/apimodels"
)

type field int

const (
	fieldNone field = iota
	fieldError
	fieldCause
	fieldSolution
	fieldSeverity
)

// Labels are matched exactly and case-sensitively at the start of a trimmed line.
var labels = []struct {
	prefix string
	field  field
}{
	{"ERROR:", fieldError},
	{"CAUSE:", fieldCause},
	{"SOLUTION:", fieldSolution},
	{"SEVERITY:", fieldSeverity},
}

// ParseResponse extracts the labeled sections from a model reply. A label
// line starts (or restarts) its field; any other non-empty line is appended,
// space separated, to the field that is currently open.
func ParseResponse(text string) apimodels.Analysis {
	parsed := apimodels.Analysis{Severity: apimodels.SeverityUnknown}
	current := fieldNone

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if f, rest, ok := matchLabel(line); ok {
			current = f
			setField(&parsed, f, rest)
			continue
		}

		if current != fieldNone && line != "" {
			setField(&parsed, current, getField(&parsed, current)+" "+line)
		}
	}

	return parsed
}

func matchLabel(line string) (field, string, bool) {
	for _, l := range labels {
		if rest, ok := strings.CutPrefix(line, l.prefix); ok {
			return l.field, strings.TrimSpace(rest), true
		}
	}
	return fieldNone, "", false
}

func getField(a *apimodels.Analysis, f field) string {
	switch f {
	case fieldError:
		return a.Error
	case fieldCause:
		return a.Cause
	case fieldSolution:
		return a.Solution
	case fieldSeverity:
		return string(a.Severity)
	}
	return ""
}

func setField(a *apimodels.Analysis, f field, v string) {
	switch f {
	case fieldError:
		a.Error = v
	case fieldCause:
		a.Cause = v
	case fieldSolution:
		a.Solution = v
	case fieldSeverity:
		a.Severity = apimodels.Severity(v)
	}
}
