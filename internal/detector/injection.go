package detector

import (
	"fmt"

	"github.com/parlaworks/promptshield/internal/rules"
)

// InjectionDetector flags SQL, code and template injection signatures.
// It never sanitizes: masking an attack string risks leaving a residual
// string that is still exploitable, so injection attempts are reported and
// the input rejected. It reads the text as rewritten by the content stage.
type InjectionDetector struct {
	// Rules holds the SQL, code and template signature groups, in that
	// order. One violation per matching rule.
	Rules []rules.Rule
}

// NewInjectionDetector builds the detector with the builtin signature groups.
func NewInjectionDetector() *InjectionDetector {
	var rs []rules.Rule
	rs = append(rs, rules.SQLInjection()...)
	rs = append(rs, rules.CodeInjection()...)
	rs = append(rs, rules.TemplateInjection()...)
	return &InjectionDetector{Rules: rs}
}

func (d *InjectionDetector) Name() string { return "injection" }

func (d *InjectionDetector) Detect(ctx *ScanContext) []Violation {
	var violations []Violation

	for _, rule := range d.Rules {
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

	// Structural confirmation catches shell execution shapes the signature
	// regexes miss (e.g. "cat payload | bash" with no downloader prefix).
	if containsShellMeta(ctx.Text) && confirmShellExecution(ctx.Text) {
		violations = append(violations, Violation{
			RuleID:     "code-shell-structure",
			Category:   rules.CategoryCodeInjection,
			Severity:   rules.SeverityReject,
			Match:      ctx.Text,
			Message:    "code_injection signature detected: shell execution structure",
			Confidence: 0.85,
		})
	}

	return violations
}
