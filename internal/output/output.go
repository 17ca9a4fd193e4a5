// Package output renders analysis results and generated samples for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/sozercan/health-agent/apimodels"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text", "human":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: text, json, yaml)", s)
	}
}

type Writer struct {
	w      io.Writer
	format Format
}

func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// WriteResult renders an analysis result in the configured format.
func (wr *Writer) WriteResult(result apimodels.AnalysisResult) error {
	switch wr.format {
	case FormatJSON:
		return wr.writeJSON(result)
	case FormatYAML:
		return wr.writeYAML(result)
	default:
		return wr.writeResultText(result)
	}
}

// WriteLogs renders a generated sample in the configured format.
func (wr *Writer) WriteLogs(logs apimodels.GeneratedLogs) error {
	switch wr.format {
	case FormatJSON:
		return wr.writeJSON(logs)
	case FormatYAML:
		return wr.writeYAML(logs)
	default:
		header := color.New(color.FgCyan, color.Bold)
		header.Fprintf(wr.w, "%s logs (%s)\n", logs.Source, logs.Timestamp)
		_, err := fmt.Fprintln(wr.w, logs.Logs)
		return err
	}
}

func (wr *Writer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (wr *Writer) writeYAML(v interface{}) error {
	enc := yaml.NewEncoder(wr.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (wr *Writer) writeResultText(result apimodels.AnalysisResult) error {
	if !result.Success() {
		color.New(color.FgRed, color.Bold).Fprintln(wr.w, "ANALYSIS FAILED")
		fmt.Fprintf(wr.w, "   %s\n", result.Error)
		_, err := fmt.Fprintf(wr.w, "   %s\n", color.HiBlackString(result.Timestamp))
		return err
	}

	a := result.Analysis
	section := func(c *color.Color, title, body string) {
		c.Fprintln(wr.w, title)
		fmt.Fprintf(wr.w, "   %s\n\n", body)
	}

	fmt.Fprintln(wr.w)
	section(color.New(color.FgRed, color.Bold), "ERROR:", a.Error)
	section(color.New(color.FgYellow, color.Bold), "CAUSE:", a.Cause)
	section(color.New(color.FgGreen, color.Bold), "SOLUTION:", a.Solution)
	severityColor(a.Severity).Fprintf(wr.w, "SEVERITY: %s\n\n", a.Severity)

	fmt.Fprintln(wr.w, strings.Repeat("─", 60))
	footer := fmt.Sprintf("%s/%s at %s", result.Provider, result.Model, result.Timestamp)
	if result.Metadata != nil {
		footer += fmt.Sprintf(" (%s, %d tokens)", result.Metadata.Duration, result.Metadata.TokensUsed)
	}
	_, err := fmt.Fprintln(wr.w, color.HiBlackString(footer))
	return err
}

func severityColor(s apimodels.Severity) *color.Color {
	switch apimodels.Severity(strings.ToUpper(string(s))) {
	case apimodels.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case apimodels.SeverityHigh:
		return color.New(color.FgRed)
	case apimodels.SeverityMedium:
		return color.New(color.FgYellow)
	case apimodels.SeverityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}
