package rules

import (
	"fmt"
	"regexp"
)

// Category classifies what a rule detects.
type Category string

const (
	CategoryProfanity         Category = "profanity"
	CategoryHate              Category = "hate"
	CategoryHarassment        Category = "harassment"
	CategoryViolence          Category = "violence"
	CategoryBlockedPattern    Category = "blocked_pattern"
	CategorySQLInjection      Category = "sql_injection"
	CategoryCodeInjection     Category = "code_injection"
	CategoryTemplateInjection Category = "template_injection"
	CategoryLength            Category = "length"
)

// Severity controls what happens when a rule matches.
type Severity string

const (
	// SeveritySanitize rewrites the matched span in place; the input stays valid.
	SeveritySanitize Severity = "sanitize"
	// SeverityReject invalidates the whole input; matched text is never rewritten.
	SeverityReject Severity = "reject"
)

// Rule is one named check. Rules are immutable after construction and are
// always evaluated in declaration order so violation lists are reproducible.
type Rule struct {
	ID       string
	Category Category
	Severity Severity
	Pattern  *regexp.Regexp

	// Label is the human-readable prefix for violation messages,
	// e.g. "profanity sanitized" or "sql_injection signature detected".
	Label string

	// Mask replaces matched text for sanitize-severity rules. Empty means
	// an asterisk run the length of the match.
	Mask string

	// Confidence is advisory (0.0-1.0). Decision logic never consults it;
	// it is carried through for external scoring consumers.
	Confidence float64
}

// MaskEntry is one profanity-map entry: a lexeme pattern and its
// canonical masked form.
type MaskEntry struct {
	Lexeme string `yaml:"lexeme"`
	Mask   string `yaml:"mask"`
}

// CompileProfanity builds sanitize-severity profanity rules from mask
// entries, preserving entry order. The lexeme is treated as a regex
// fragment matched case-insensitively on word boundaries.
func CompileProfanity(entries []MaskEntry) ([]Rule, error) {
	out := make([]Rule, 0, len(entries))
	for i, e := range entries {
		re, err := regexp.Compile(`(?i)\b(?:` + e.Lexeme + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("profanity entry %d (%q): %w", i, e.Lexeme, err)
		}
		out = append(out, Rule{
			ID:         fmt.Sprintf("profanity-%03d", i),
			Category:   CategoryProfanity,
			Severity:   SeveritySanitize,
			Pattern:    re,
			Label:      "profanity sanitized",
			Mask:       e.Mask,
			Confidence: 0.95,
		})
	}
	return out, nil
}

// CompileBlocked builds reject-severity rules from raw pattern strings,
// preserving list order. Patterns are matched case-insensitively.
func CompileBlocked(patterns []string) ([]Rule, error) {
	out := make([]Rule, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("blocked pattern %d (%q): %w", i, p, err)
		}
		out = append(out, Rule{
			ID:         fmt.Sprintf("blocked-%03d", i),
			Category:   CategoryBlockedPattern,
			Severity:   SeverityReject,
			Pattern:    re,
			Label:      "blocked pattern matched",
			Confidence: 0.90,
		})
	}
	return out, nil
}

// mustRule builds a builtin rule; builtin patterns are compile-time constants.
func mustRule(id string, cat Category, sev Severity, label, pattern string, confidence float64) Rule {
	return Rule{
		ID:         id,
		Category:   cat,
		Severity:   sev,
		Pattern:    regexp.MustCompile(pattern),
		Label:      label,
		Confidence: confidence,
	}
}
