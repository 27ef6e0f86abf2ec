package promptshield

import (
	"strings"
)

// ValidationError is returned when input contains any reject-severity
// violation. It carries every violation collected in the call — never just
// the first — so the caller sees the full picture in one failure.
type ValidationError struct {
	Violations []Violation
}

// Error concatenates all violation messages, one per line.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("input rejected:")
	for _, v := range e.Violations {
		sb.WriteString("\n")
		sb.WriteString(v.Message)
	}
	return sb.String()
}

// Categories returns the distinct violation categories, in violation order.
func (e *ValidationError) Categories() []string {
	seen := make(map[Category]bool)
	var out []string
	for _, v := range e.Violations {
		if !seen[v.Category] {
			seen[v.Category] = true
			out = append(out, string(v.Category))
		}
	}
	return out
}
