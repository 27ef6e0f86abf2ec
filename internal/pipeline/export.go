package pipeline

import (
	"github.com/parlaworks/promptshield/internal/config"
	"github.com/parlaworks/promptshield/internal/rules"
)

// GuardrailDoc serializes the pipeline's rule set into the declarative shape
// the external hosted-guardrail client consumes. Pure data transform: no
// validation runs, and entry order is the detector evaluation order.
func (p *Pipeline) GuardrailDoc() config.GuardrailDoc {
	doc := config.GuardrailDoc{
		Version: 1,
		Settings: config.GuardrailSettings{
			MaxLength:           p.cfg.MaxLength,
			MinLength:           p.cfg.MinLength,
			ConfidenceThreshold: p.cfg.ConfidenceThreshold,
		},
	}

	appendGroup := func(rs []rules.Rule) {
		// One entry per category, categories in first-seen order.
		index := make(map[rules.Category]int)
		for _, r := range rs {
			i, ok := index[r.Category]
			if !ok {
				doc.Guardrails = append(doc.Guardrails, config.GuardrailEntry{
					Name:     string(r.Category),
					Category: string(r.Category),
					Action:   string(r.Severity),
				})
				i = len(doc.Guardrails) - 1
				index[r.Category] = i
			}
			doc.Guardrails[i].Patterns = append(doc.Guardrails[i].Patterns, r.Pattern.String())
		}
	}

	appendGroup(p.content.Profanity)
	appendGroup(p.content.Reject)
	appendGroup(p.injection.Rules)

	return doc
}
