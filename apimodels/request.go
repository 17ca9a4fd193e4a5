package apimodels

type AnalysisRequest struct {
	// Logs is the raw log text to analyze. A nil value means the field was
	// absent from the request body.
	Logs *string `json:"logs"`
}

// ErrorResponse is returned for requests that never reached the analyzer.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type GeneratedLogs struct {
	// Newline separated sample log lines
	Logs string `json:"logs" yaml:"logs"`

	// Category the sample was drawn from (Database, API, ...)
	Source string `json:"source" yaml:"source"`

	Timestamp string `json:"timestamp" yaml:"timestamp"`
}
