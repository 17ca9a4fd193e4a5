package apimodels

import "time"

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
	SeverityUnknown  Severity = "UNKNOWN"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Analysis is the structured form of the model reply.
type Analysis struct {
	Error    string   `json:"error" yaml:"error"`
	Cause    string   `json:"cause" yaml:"cause"`
	Solution string   `json:"solution" yaml:"solution"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// AnalysisResult is either a success carrying Analysis or a failure
// carrying Error. Use NewSuccess and NewFailure to build one.
type AnalysisResult struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Status    Status `json:"status" yaml:"status"`

	// Nil on failure
	Analysis *Analysis `json:"analysis" yaml:"analysis"`

	// The unparsed model reply
	RawResponse string `json:"raw_response,omitempty" yaml:"raw_response,omitempty"`

	Model    string `json:"model,omitempty" yaml:"model,omitempty"`
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`

	// Metadata about the completion call
	Metadata *AnalysisMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type AnalysisMetadata struct {
	// Time taken for the completion call
	Duration string `json:"duration" yaml:"duration"`

	// Tokens used in analysis
	TokensUsed int64 `json:"tokensUsed" yaml:"tokensUsed"`
}

// Success reports whether the result carries an analysis.
func (r AnalysisResult) Success() bool {
	return r.Status == StatusSuccess
}

func NewSuccess(at time.Time, analysis Analysis, raw, model, provider string, meta AnalysisMetadata) AnalysisResult {
	return AnalysisResult{
		Timestamp:   FormatTimestamp(at),
		Status:      StatusSuccess,
		Analysis:    &analysis,
		RawResponse: raw,
		Model:       model,
		Provider:    provider,
		Metadata:    &meta,
	}
}

func NewFailure(at time.Time, err error) AnalysisResult {
	msg := "analysis failed"
	if err != nil {
		msg = err.Error()
	}
	return AnalysisResult{
		Timestamp: FormatTimestamp(at),
		Status:    StatusError,
		Error:     msg,
	}
}

// FormatTimestamp renders t as an ISO-8601 UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
