package detector

import (
	"testing"

	"github.com/parlaworks/promptshield/internal/rules"
)

func newContentDetector(t *testing.T) *ContentDetector {
	t.Helper()
	profanity, err := rules.CompileProfanity(rules.DefaultProfanityMap())
	if err != nil {
		t.Fatalf("compiling default profanity map: %v", err)
	}
	return &ContentDetector{
		Profanity: profanity,
		Reject:    rules.ContentSafety(),
	}
}

func TestContentDetector_MasksProfanity(t *testing.T) {
	d := newContentDetector(t)

	ctx := &ScanContext{Text: "damn this bill is stupid"}
	got := d.Detect(ctx)

	if ctx.Text != "d*** this bill is stupid" {
		t.Errorf("expected masked text, got %q", ctx.Text)
	}
	if len(got) != 1 {
		t.Fatalf("expected one violation, got %d", len(got))
	}
	v := got[0]
	if v.Severity != rules.SeveritySanitize {
		t.Errorf("profanity must be sanitize-severity, got %s", v.Severity)
	}
	if v.Message != "profanity sanitized: damn" {
		t.Errorf("unexpected message: %q", v.Message)
	}
}

func TestContentDetector_MaskIsFixedPoint(t *testing.T) {
	d := newContentDetector(t)

	ctx := &ScanContext{Text: "damn this bill is stupid"}
	d.Detect(ctx)
	first := ctx.Text

	again := d.Detect(ctx)
	if len(again) != 0 {
		t.Errorf("re-scanning masked text must not fire again: %v", again)
	}
	if ctx.Text != first {
		t.Errorf("masking must be idempotent: %q vs %q", ctx.Text, first)
	}
}

func TestContentDetector_CaseVariants(t *testing.T) {
	d := newContentDetector(t)

	ctx := &ScanContext{Text: "DAMN and Damn and damn"}
	got := d.Detect(ctx)

	if ctx.Text != "d*** and d*** and d***" {
		t.Errorf("all case variants must be masked, got %q", ctx.Text)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 violations (one per match), got %d", len(got))
	}
}

func TestContentDetector_RejectNotMasked(t *testing.T) {
	d := newContentDetector(t)

	ctx := &ScanContext{Text: "I hate this topic"}
	got := d.Detect(ctx)

	if ctx.Text != "I hate this topic" {
		t.Errorf("reject-severity content must not be rewritten, got %q", ctx.Text)
	}

	var found *Violation
	for i := range got {
		if got[i].Category == rules.CategoryHate {
			found = &got[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("expected a hate violation, got %v", got)
	}
	if found.Severity != rules.SeverityReject {
		t.Errorf("hate violations must reject, got %s", found.Severity)
	}
	if found.Match != "hate" {
		t.Errorf("reject matches are reported verbatim, got %q", found.Match)
	}
}

func TestContentDetector_MultipleRulesAllFire(t *testing.T) {
	d := newContentDetector(t)

	// Profanity (sanitize) and violence (reject) in one input: both must
	// be reported — reject never short-circuits detection.
	ctx := &ScanContext{Text: "damn, I will kill that process"}
	got := d.Detect(ctx)

	var sawProfanity, sawViolence bool
	for _, v := range got {
		switch v.Category {
		case rules.CategoryProfanity:
			sawProfanity = true
		case rules.CategoryViolence:
			sawViolence = true
		}
	}
	if !sawProfanity || !sawViolence {
		t.Errorf("expected profanity and violence violations, got %v", got)
	}
	if ctx.Text != "d***, I will kill that process" {
		t.Errorf("profanity still masked alongside reject, got %q", ctx.Text)
	}
}

func TestContentDetector_CleanInput(t *testing.T) {
	d := newContentDetector(t)

	ctx := &ScanContext{Text: "the weather in Tel Aviv is sunny"}
	if got := d.Detect(ctx); len(got) != 0 {
		t.Errorf("clean input must produce no violations, got %v", got)
	}
	if ctx.Text != "the weather in Tel Aviv is sunny" {
		t.Errorf("clean input must pass through unchanged, got %q", ctx.Text)
	}
}

func TestContentDetector_UnmaskedRuleUsesAsteriskRun(t *testing.T) {
	profanity, err := rules.CompileProfanity([]rules.MaskEntry{{Lexeme: "frack", Mask: ""}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := &ContentDetector{Profanity: profanity}

	ctx := &ScanContext{Text: "frack this"}
	d.Detect(ctx)
	if ctx.Text != "***** this" {
		t.Errorf("expected asterisk run sized to the match, got %q", ctx.Text)
	}
}
