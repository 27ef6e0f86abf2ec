// Package promptshield validates and sanitizes free-text user input before
// it reaches an upstream conversational agent.
//
// Input flows through a fixed-order detector pipeline: length validation
// (fast reject), content safety (profanity is masked in place; hate,
// harassment, violence and blocked phrases reject), then injection
// prevention (SQL, code and template signatures, reject-only). Detection is
// purely pattern-driven, synchronous, and stateless across calls apart from
// one-time pattern compilation.
//
// Two calling conventions wrap one core operation:
//
//   - Validate rejects loudly: any reject-severity violation is an error.
//   - ValidateSafe returns sanitized text plus warnings for cosmetic
//     sanitization, but still errors on reject-severity violations —
//     safety is never downgraded to a warning.
package promptshield

import (
	"sync"

	"github.com/parlaworks/promptshield/internal/config"
	"github.com/parlaworks/promptshield/internal/detector"
	"github.com/parlaworks/promptshield/internal/pipeline"
	"github.com/parlaworks/promptshield/internal/rules"
)

// Aliases so callers never import internal packages.
type (
	Config            = config.Config
	MaskEntry         = rules.MaskEntry
	Category          = rules.Category
	Severity          = rules.Severity
	Violation         = detector.Violation
	Result            = pipeline.Result
	GuardrailDoc      = config.GuardrailDoc
	GuardrailSettings = config.GuardrailSettings
	GuardrailEntry    = config.GuardrailEntry
)

// DefaultConfig returns the builtin knob set (max length 5000, min length 1,
// confidence threshold 0.7, builtin profanity map and blocked patterns).
func DefaultConfig() *Config { return config.Default() }

// LoadConfig reads a YAML config file, backfilling defaults for absent
// fields. A missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// Shield is a compiled validation pipeline. It is immutable after New and
// safe for concurrent use.
type Shield struct {
	p *pipeline.Pipeline
}

// New compiles the configuration into a pipeline. Passing nil uses the
// defaults. Prefer constructing a Shield and passing it around over the
// process singleton; Default exists for callers that genuinely want one
// shared instance.
func New(cfg *Config) (*Shield, error) {
	p, err := pipeline.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Shield{p: p}, nil
}

// ValidateInput is the core operation both calling conventions wrap: it runs
// the full pipeline and returns the aggregated result without interpreting it.
func (s *Shield) ValidateInput(text string) Result {
	return s.p.Validate(text)
}

// Validate is the strict convention: it returns the sanitized text, or a
// *ValidationError when any reject-severity violation occurred. Used where
// the caller cannot tolerate unsafe input under any circumstance.
func (s *Shield) Validate(text string) (string, error) {
	res := s.p.Validate(text)
	if !res.Valid {
		return "", &ValidationError{Violations: res.Violations}
	}
	return res.Sanitized, nil
}

// ValidateSafe is the convention for interactive callers: valid input comes
// back sanitized with human-readable warnings for any masking that ran;
// reject-severity violations still fail with a *ValidationError, because
// only cosmetic sanitization may be reported as a warning.
func (s *Shield) ValidateSafe(text string) (string, []string, error) {
	res := s.p.Validate(text)
	if !res.Valid {
		return "", nil, &ValidationError{Violations: res.Violations}
	}
	return res.Sanitized, res.Warnings(), nil
}

// GuardrailConfig exports the compiled rule set as the declarative document
// an external hosted-guardrail client enforces independently.
func (s *Shield) GuardrailConfig() GuardrailDoc {
	return s.p.GuardrailDoc()
}

// Config returns the shield's configuration (read-only by convention).
func (s *Shield) Config() *Config {
	return s.p.Config()
}

// ---------------------------------------------------------------------------
// Process-wide singleton
// ---------------------------------------------------------------------------

var (
	defaultMu     sync.Mutex
	defaultShield *Shield
)

// Default returns the process-wide shield, building it with DefaultConfig on
// first access. The guard ensures concurrent first access compiles exactly
// once; afterwards the instance is read-only and shared without locking.
func Default() *Shield {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultShield == nil {
		s, err := New(nil)
		if err != nil {
			// Builtin configuration is compile-time constant; failing to
			// build it is a programming error.
			panic(err)
		}
		defaultShield = s
	}
	return defaultShield
}

// Configure replaces the process-wide shield. Call it before first use;
// callers holding the previous instance keep it.
func Configure(cfg *Config) error {
	s, err := New(cfg)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultShield = s
	defaultMu.Unlock()
	return nil
}

// Reset discards the process-wide shield so the next Default rebuilds it.
// Needed by tests that mutate configuration.
func Reset() {
	defaultMu.Lock()
	defaultShield = nil
	defaultMu.Unlock()
}

// Validate runs the strict convention on the process-wide shield.
func Validate(text string) (string, error) {
	return Default().Validate(text)
}

// ValidateSafe runs the safe convention on the process-wide shield.
func ValidateSafe(text string) (string, []string, error) {
	return Default().ValidateSafe(text)
}

// GuardrailConfig exports the process-wide shield's rule set.
func GuardrailConfig() GuardrailDoc {
	return Default().GuardrailConfig()
}
