package analyzer

import "fmt"

var SystemPrompt = `You are a senior DevOps engineer and debugging expert.
Your job is to analyze application error logs and provide clear, actionable solutions.

For each error log you receive:
1. Identify what went wrong (the error)
2. Explain why it happened (root cause)
3. Suggest how to fix it (solution)
4. Rate severity: LOW, MEDIUM, HIGH, CRITICAL

Be concise but complete. Use plain English, not jargon.
`

const analysisTemplate = `Analyze this application error log:

%s

Provide your analysis in this exact format:

ERROR: [brief description]
CAUSE: [why this happened]
SOLUTION: [step-by-step fix]
SEVERITY: [LOW/MEDIUM/HIGH/CRITICAL]
`

// BuildUserPrompt embeds logs verbatim into the analysis template.
func BuildUserPrompt(logs string) string {
	return fmt.Sprintf(analysisTemplate, logs)
}
