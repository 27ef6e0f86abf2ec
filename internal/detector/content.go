package detector

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/parlaworks/promptshield/internal/rules"
)

// ContentDetector masks profanity in place and flags hate, harassment,
// violence and blocked-phrase matches. Profanity is sanitize-severity (the
// input stays valid); everything else is reject-severity and is reported
// verbatim — rejected content is never silently cleaned.
type ContentDetector struct {
	// Profanity rules rewrite matched spans; evaluated in order, each over
	// the text as rewritten by the previous rule.
	Profanity []rules.Rule
	// Reject rules (hate/harassment/violence plus configured blocked
	// patterns) are evaluated against the masked text, one violation per
	// matching rule.
	Reject []rules.Rule
}

func (d *ContentDetector) Name() string { return "content" }

// Detect never short-circuits: every rule runs so the caller sees the full
// violation picture even when a reject rule has already fired.
func (d *ContentDetector) Detect(ctx *ScanContext) []Violation {
	var violations []Violation

	for _, rule := range d.Profanity {
		rule := rule
		ctx.Text = rule.Pattern.ReplaceAllStringFunc(ctx.Text, func(match string) string {
			violations = append(violations, Violation{
				RuleID:     rule.ID,
				Category:   rule.Category,
				Severity:   rule.Severity,
				Match:      match,
				Message:    fmt.Sprintf("%s: %s", rule.Label, strings.ToLower(match)),
				Confidence: rule.Confidence,
			})
			return maskFor(rule, match)
		})
	}

	for _, rule := range d.Reject {
		if match := rule.Pattern.FindString(ctx.Text); match != "" {
			violations = append(violations, Violation{
				RuleID:     rule.ID,
				Category:   rule.Category,
				Severity:   rule.Severity,
				Match:      match,
				Message:    fmt.Sprintf("%s: %q", rule.Label, match),
				Confidence: rule.Confidence,
			})
		}
	}

	return violations
}

// maskFor returns the rule's canonical mask, or an asterisk run the length
// of the match when the rule has none.
func maskFor(rule rules.Rule, match string) string {
	if rule.Mask != "" {
		return rule.Mask
	}
	return strings.Repeat("*", utf8.RuneCountInString(match))
}
