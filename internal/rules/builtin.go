package rules

// Builtin rule sets. Ordering within each set is load-bearing: detectors
// evaluate rules in slice order, and violation lists must be reproducible
// for identical input.

// DefaultProfanityMap is the builtin lexeme -> mask table. Masks keep the
// first letter so a reader can tell what was filtered without seeing it.
func DefaultProfanityMap() []MaskEntry {
	return []MaskEntry{
		{Lexeme: "damn", Mask: "d***"},
		{Lexeme: "hell", Mask: "h***"},
		{Lexeme: "crap", Mask: "c***"},
		{Lexeme: "shit", Mask: "s***"},
		{Lexeme: "fuck(er|ing)?", Mask: ""},
		{Lexeme: "bastard", Mask: "b******"},
		{Lexeme: "asshole", Mask: "a******"},
	}
}

// ContentSafety returns the reject-severity hate/harassment/violence rules.
// The lexicons mirror crude term lists rather than semantic classification;
// anything smarter belongs in an external hosted guardrail.
func ContentSafety() []Rule {
	return []Rule{
		// --- Hate speech ---
		mustRule("hate-lexicon", CategoryHate, SeverityReject,
			"hate speech detected",
			`(?i)\bhate(s|d|ful)?\b`, 0.75),
		mustRule("hate-supremacy", CategoryHate, SeverityReject,
			"hate speech detected",
			`(?i)\b(racial\s+slur|white\s+power|ethnic\s+cleansing)\b`, 0.90),

		// --- Harassment ---
		mustRule("harassment-self-harm-directive", CategoryHarassment, SeverityReject,
			"harassment detected",
			`(?i)\b(kill\s+your\s*self|kys|go\s+die)\b`, 0.90),
		mustRule("harassment-degrading", CategoryHarassment, SeverityReject,
			"harassment detected",
			`(?i)\byou\s*('re|\s+are)\s+(a\s+)?(worthless|pathetic|disgusting|subhuman)\b`, 0.80),

		// --- Violence ---
		mustRule("violence-lexicon", CategoryViolence, SeverityReject,
			"violent content detected",
			`(?i)\b(kill|murder|slaughter|massacre|violence)\b`, 0.75),
		mustRule("violence-threat", CategoryViolence, SeverityReject,
			"violent content detected",
			`(?i)\b(attack|destroy|bomb|shoot|stab)\s+(him|her|them|you|us|everyone|everybody)\b`, 0.85),
	}
}

// SQLInjection returns the SQL signature rules: statement keywords adjacent
// to quotes, comment markers, or statement terminators.
func SQLInjection() []Rule {
	return []Rule{
		mustRule("sql-union-select", CategorySQLInjection, SeverityReject,
			"sql_injection signature detected",
			`(?i)\bunion(\s+all)?\s+select\b`, 0.90),
		mustRule("sql-ddl-table", CategorySQLInjection, SeverityReject,
			"sql_injection signature detected",
			`(?i)\b(drop|truncate|alter)\s+table\b`, 0.90),
		mustRule("sql-dml-statement", CategorySQLInjection, SeverityReject,
			"sql_injection signature detected",
			`(?i)\b(insert\s+into|delete\s+from|update\s+\w+\s+set)\b`, 0.85),
		mustRule("sql-comment-terminator", CategorySQLInjection, SeverityReject,
			"sql_injection signature detected",
			`(;|')\s*--`, 0.80),
		mustRule("sql-tautology", CategorySQLInjection, SeverityReject,
			"sql_injection signature detected",
			`(?i)('\s*(or|and)\s*'[^']*'\s*=\s*'|\b(or|and)\s+\d+\s*=\s*\d+\b)`, 0.85),
	}
}

// CodeInjection returns the code-execution signature rules: eval-like
// constructs, shell metacharacters in suspicious combinations, and encoded
// payload markers.
func CodeInjection() []Rule {
	return []Rule{
		mustRule("code-eval-call", CategoryCodeInjection, SeverityReject,
			"code_injection signature detected",
			`(?i)\b(eval|exec|execfile|system|popen)\s*\(`, 0.85),
		mustRule("code-pipe-to-shell", CategoryCodeInjection, SeverityReject,
			"code_injection signature detected",
			`(?i)\b(curl|wget)\b[^|;&]*\|\s*(sh|bash|zsh)\b`, 0.90),
		mustRule("code-command-chain", CategoryCodeInjection, SeverityReject,
			"code_injection signature detected",
			`(?i);\s*(rm|sh|bash|python|perl|nc)\b`, 0.80),
		mustRule("code-command-substitution", CategoryCodeInjection, SeverityReject,
			"code_injection signature detected",
			"(\\$\\([^)]+\\)|\x60[^\x60]+\x60)", 0.80),
		mustRule("code-hex-escape", CategoryCodeInjection, SeverityReject,
			"code_injection signature detected",
			`(\\\\?x[0-9a-fA-F]{2}){4,}`, 0.70),
		mustRule("code-base64-payload", CategoryCodeInjection, SeverityReject,
			"code_injection signature detected",
			`[A-Za-z0-9+/]{60,}={0,2}`, 0.70),
	}
}

// TemplateInjection returns expression-delimiter rules characteristic of
// template engines (Jinja/Go templates, ERB/JSP, shell/JS interpolation).
func TemplateInjection() []Rule {
	return []Rule{
		mustRule("template-expression", CategoryTemplateInjection, SeverityReject,
			"template_injection signature detected",
			`\{\{[\s\S]*?\}\}`, 0.85),
		mustRule("template-statement", CategoryTemplateInjection, SeverityReject,
			"template_injection signature detected",
			`\{%[\s\S]*?%\}`, 0.85),
		mustRule("template-dollar-brace", CategoryTemplateInjection, SeverityReject,
			"template_injection signature detected",
			`\$\{[^}]+\}`, 0.80),
		mustRule("template-erb", CategoryTemplateInjection, SeverityReject,
			"template_injection signature detected",
			`<%[\s\S]*?%>`, 0.85),
		mustRule("template-ruby-interpolation", CategoryTemplateInjection, SeverityReject,
			"template_injection signature detected",
			`#\{[^}]+\}`, 0.75),
	}
}
