// Package analysis declares the AI risk-analysis collaborator: contract text
// in, a structured risk report out. The model provider behind it is external
// and not specified here.
package analysis

import "context"

// RiskLevel grades one finding.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Finding is one flagged passage of a contract.
type Finding struct {
	Heading        string    `json:"heading,omitempty"`
	Excerpt        string    `json:"excerpt,omitempty"`
	Risk           RiskLevel `json:"risk"`
	Summary        string    `json:"summary"`
	Recommendation string    `json:"recommendation,omitempty"`
}

// Report is the structured result of analysing one contract.
type Report struct {
	// Score is an overall risk score from 0 (benign) to 100.
	Score    int       `json:"score"`
	Summary  string    `json:"summary"`
	Findings []Finding `json:"findings"`
}

// Analyzer is the remote analysis service.
type Analyzer interface {
	Analyze(ctx context.Context, contractText string) (Report, error)
}
