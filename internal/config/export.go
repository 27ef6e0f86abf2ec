package config

// GuardrailDoc is the declarative document consumed by the external
// hosted-guardrail client. Building it is a pure data transform: no
// validation runs here, and the shape (category -> pattern list -> action)
// is stable because the consumer depends on it.
type GuardrailDoc struct {
	Version    int               `yaml:"version" json:"version"`
	Settings   GuardrailSettings `yaml:"settings" json:"settings"`
	Guardrails []GuardrailEntry  `yaml:"guardrails" json:"guardrails"`
}

// GuardrailSettings mirrors the pipeline knobs, including the advisory
// confidence threshold the external client scores against.
type GuardrailSettings struct {
	MaxLength           int     `yaml:"max_length" json:"max_length"`
	MinLength           int     `yaml:"min_length" json:"min_length"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold" json:"confidence_threshold"`
}

// GuardrailEntry is one category's rule set and its enforcement action.
type GuardrailEntry struct {
	Name     string   `yaml:"name" json:"name"`
	Category string   `yaml:"category" json:"category"`
	Action   string   `yaml:"action" json:"action"` // "sanitize" or "reject"
	Patterns []string `yaml:"patterns" json:"patterns"`
}
