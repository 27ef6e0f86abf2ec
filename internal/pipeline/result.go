package pipeline

import (
	"github.com/parlaworks/promptshield/internal/detector"
	"github.com/parlaworks/promptshield/internal/rules"
)

// Result is the orchestrator's output for one input.
type Result struct {
	// Valid is false if any reject-severity violation occurred.
	Valid bool `json:"valid"`

	// Sanitized is the input after all sanitize-severity transforms; it
	// equals the (normalized) input when no sanitization ran.
	Sanitized string `json:"sanitized"`

	// Violations preserves detector-run order, then rule order, then match
	// order, so identical input always yields an identical list.
	Violations []detector.Violation `json:"violations,omitempty"`
}

// Messages returns every violation message, in violation order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Message)
	}
	return out
}

// Warnings returns the sanitize-severity messages (profanity masking and
// character-screening notices). These never invalidate the input.
func (r Result) Warnings() []string {
	var out []string
	for _, v := range r.Violations {
		if v.Severity == rules.SeveritySanitize {
			out = append(out, v.Message)
		}
	}
	return out
}

// RejectViolations returns only the violations that invalidated the input.
func (r Result) RejectViolations() []detector.Violation {
	var out []detector.Violation
	for _, v := range r.Violations {
		if v.Severity == rules.SeverityReject {
			out = append(out, v)
		}
	}
	return out
}
