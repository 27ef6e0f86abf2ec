// Package pipeline runs the detectors in a fixed order and aggregates their
// violations into a single result. The order is load-bearing: length first
// (fast reject, keeps degenerate input away from the regex layers), then
// content safety (the only stage that rewrites text), then injection
// prevention over the rewritten text.
package pipeline

import (
	"fmt"

	"github.com/parlaworks/promptshield/internal/config"
	"github.com/parlaworks/promptshield/internal/detector"
	"github.com/parlaworks/promptshield/internal/normalize"
	"github.com/parlaworks/promptshield/internal/rules"
)

// Pipeline holds one compiled pattern library and one configuration. After
// construction it is read-only and safe for concurrent use without locking.
type Pipeline struct {
	cfg       *config.Config
	length    *detector.LengthDetector
	content   *detector.ContentDetector
	injection *detector.InjectionDetector
}

// New compiles the configuration's pattern lists and builds the detectors.
// Compilation happens exactly once per pipeline; calls share the compiled
// patterns afterwards.
func New(cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	profanity, err := rules.CompileProfanity(cfg.ProfanityMap)
	if err != nil {
		return nil, fmt.Errorf("compiling profanity map: %w", err)
	}
	blocked, err := rules.CompileBlocked(cfg.BlockedPatterns)
	if err != nil {
		return nil, fmt.Errorf("compiling blocked patterns: %w", err)
	}

	reject := rules.ContentSafety()
	reject = append(reject, blocked...)

	return &Pipeline{
		cfg:    cfg,
		length: &detector.LengthDetector{Min: cfg.MinLength, Max: cfg.MaxLength},
		content: &detector.ContentDetector{
			Profanity: profanity,
			Reject:    reject,
		},
		injection: detector.NewInjectionDetector(),
	}, nil
}

// Config returns the pipeline's configuration (for inspection/export).
func (p *Pipeline) Config() *config.Config {
	return p.cfg
}

// Validate runs length -> content -> injection. A length rejection returns
// immediately with only the length violation; otherwise content and
// injection both run unconditionally so the result always carries the
// complete violation set for the text.
func (p *Pipeline) Validate(input string) Result {
	norm := normalize.Normalize(input)
	ctx := &detector.ScanContext{Text: norm.Text}

	if lv := p.length.Detect(ctx); len(lv) > 0 {
		return Result{Valid: false, Sanitized: clampRunes(norm.Text, p.cfg.MaxLength), Violations: lv}
	}

	var violations []detector.Violation
	for _, msg := range norm.Removed {
		violations = append(violations, detector.Violation{
			RuleID:     "unicode-screen",
			Category:   rules.CategoryBlockedPattern,
			Severity:   rules.SeveritySanitize,
			Message:    msg,
			Confidence: 1.0,
		})
	}

	violations = append(violations, p.content.Detect(ctx)...)
	violations = append(violations, p.injection.Detect(ctx)...)

	valid := true
	for _, v := range violations {
		if v.Severity == rules.SeverityReject {
			valid = false
			break
		}
	}

	return Result{
		Valid:      valid,
		Sanitized:  clampRunes(ctx.Text, p.cfg.MaxLength),
		Violations: violations,
	}
}

// clampRunes keeps the sanitized output within the configured maximum even
// when a configured mask is longer than the lexeme it replaced.
func clampRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
