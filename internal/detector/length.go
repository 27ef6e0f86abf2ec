package detector

import (
	"fmt"
	"unicode/utf8"

	"github.com/parlaworks/promptshield/internal/rules"
)

// LengthDetector rejects input that is empty after stripping, shorter than
// the minimum, or longer than the maximum. It runs first: it is the cheapest
// check and keeps degenerate input away from the regex layers.
type LengthDetector struct {
	Min int
	Max int
}

func (d *LengthDetector) Name() string { return "length" }

// Detect measures ctx.Text in runes. The text arrives already
// whitespace-stripped from normalization.
func (d *LengthDetector) Detect(ctx *ScanContext) []Violation {
	n := utf8.RuneCountInString(ctx.Text)

	switch {
	case n == 0:
		return []Violation{{
			RuleID:     "length-empty",
			Category:   rules.CategoryLength,
			Severity:   rules.SeverityReject,
			Message:    fmt.Sprintf("input is empty after stripping whitespace; minimum length is %d", d.Min),
			Confidence: 1.0,
		}}
	case n > d.Max:
		return []Violation{{
			RuleID:     "length-max",
			Category:   rules.CategoryLength,
			Severity:   rules.SeverityReject,
			Message:    fmt.Sprintf("input length %d exceeds the maximum length %d", n, d.Max),
			Confidence: 1.0,
		}}
	case n < d.Min:
		return []Violation{{
			RuleID:     "length-min",
			Category:   rules.CategoryLength,
			Severity:   rules.SeverityReject,
			Message:    fmt.Sprintf("input length %d is below the minimum length %d", n, d.Min),
			Confidence: 1.0,
		}}
	}

	return nil
}
