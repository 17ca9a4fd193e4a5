package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/health-agent/apimodels"
	"github.com/sozercan/health-agent/internal/analyzer"
	"github.com/sozercan/health-agent/internal/config"
	"github.com/sozercan/health-agent/internal/llm"
)

type stubProvider struct {
	reply string
	err   error
	user  string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, system, user string, opts ...llm.Option) (*llm.Response, error) {
	s.user = user
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Content: s.reply, Model: "stub-model"}, nil
}

func factoryFor(p llm.Provider) ProviderFactory {
	return func(cfg *config.LLMConfig) (llm.Provider, error) { return p, nil }
}

func setupEnv(t *testing.T) {
	t.Helper()
	color.NoColor = true
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("GROQ_API_KEY", "gsk-test")
}

func execute(t *testing.T, factory ProviderFactory, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(factory)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const reply = "ERROR: Disk full\nCAUSE: Log rotation disabled\nSOLUTION: Enable logrotate\nSEVERITY: HIGH"

func TestAnalyzeFromFile(t *testing.T) {
	setupEnv(t)
	p := &stubProvider{reply: reply}

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("ERROR: Disk space low: 98% used"), 0o600))

	out, err := execute(t, factoryFor(p), "", "analyze", path)
	require.NoError(t, err)

	assert.Contains(t, out, "SEVERITY: HIGH")
	assert.Contains(t, out, "Enable logrotate")
	assert.Contains(t, p.user, "ERROR: Disk space low: 98% used")
}

func TestAnalyzeFromStdinJSON(t *testing.T) {
	setupEnv(t)
	p := &stubProvider{reply: reply}

	out, err := execute(t, factoryFor(p), "CRITICAL: Out of memory exception", "analyze", "-", "-o", "json")
	require.NoError(t, err)

	var result apimodels.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success())
	assert.Equal(t, "stub", result.Provider)
	assert.Equal(t, "stub-model", result.Model)
	assert.Equal(t, apimodels.SeverityHigh, result.Analysis.Severity)
	assert.Contains(t, p.user, "Out of memory exception")
}

func TestAnalyzeFailureExitsNonZero(t *testing.T) {
	setupEnv(t)
	p := &stubProvider{err: errors.New("upstream unavailable")}

	out, err := execute(t, factoryFor(p), "x", "analyze")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.Contains(t, out, "ANALYSIS FAILED")
	assert.Contains(t, out, "upstream unavailable")
}

func TestAnalyzeErrors(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, factoryFor(&stubProvider{}), "", "analyze", "-o", "table")
	assert.ErrorContains(t, err, "unsupported output format")

	_, err = execute(t, factoryFor(&stubProvider{}), "", "analyze", filepath.Join(t.TempDir(), "missing.log"))
	assert.ErrorContains(t, err, "reading log file")

	failing := func(cfg *config.LLMConfig) (llm.Provider, error) { return nil, llm.ErrUnknownProvider }
	_, err = execute(t, failing, "x", "analyze")
	assert.ErrorIs(t, err, llm.ErrUnknownProvider)
}

func TestAnalyzeMissingKey(t *testing.T) {
	setupEnv(t)
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("LLM_API_KEY", "")

	_, err := execute(t, factoryFor(&stubProvider{}), "x", "analyze")
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestSpinnerSuffix(t *testing.T) {
	settings := analyzer.Settings{Model: "llama-3.3-70b-versatile", Temperature: 0.3, MaxTokens: 512}
	assert.Equal(t, " Analyzing with groq (llama-3.3-70b-versatile)...", spinnerSuffix("groq", settings))
}

func TestGenerateLogs(t *testing.T) {
	color.NoColor = true

	out, err := execute(t, nil, "", "generate-logs", "-o", "json")
	require.NoError(t, err)

	var logs apimodels.GeneratedLogs
	require.NoError(t, json.Unmarshal([]byte(out), &logs))
	assert.NotEmpty(t, logs.Source)
	assert.Len(t, strings.Split(logs.Logs, "\n"), 3)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "healthctl dev (commit: none, built: unknown)\n", out)
}
