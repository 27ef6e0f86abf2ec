package detector

import (
	"github.com/parlaworks/promptshield/internal/rules"
)

// Detector is the interface every detection layer implements. Each detector
// receives the scan context (current text plus accumulated enrichments) and
// returns zero or more violations.
type Detector interface {
	// Name returns the detector's identifier (e.g. "length", "content", "injection").
	Name() string

	// Detect inspects the text and returns violations. Detectors may also
	// rewrite ctx.Text (the content detector masks profanity in place).
	Detect(ctx *ScanContext) []Violation
}

// ScanContext carries the text through all detector layers. The content
// detector rewrites Text; the injection detector reads the rewritten form
// so a profanity mask can never be mistaken for an injection token.
type ScanContext struct {
	Text string
}

// Violation is a single detected rule match.
type Violation struct {
	RuleID   string          `json:"rule_id"`
	Category rules.Category  `json:"category"`
	Severity rules.Severity  `json:"severity"`
	Match    string          `json:"match,omitempty"`
	Message  string          `json:"message"`
	// Confidence is advisory and never consulted by decision logic.
	Confidence float64 `json:"confidence,omitempty"`
}
