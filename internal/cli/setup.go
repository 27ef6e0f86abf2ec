package cli

import (
	"fmt"
	"os"
	"path/filepath"

	promptshield "github.com/parlaworks/promptshield"
	"github.com/parlaworks/promptshield/internal/config"
	"github.com/parlaworks/promptshield/internal/logger"
)

// buildShield loads the config file (or defaults) and compiles a pipeline.
func buildShield() (*promptshield.Shield, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := promptshield.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return promptshield.New(cfg)
}

// openAudit opens the JSONL audit log, creating its directory if needed.
// Returns nil when auditing is disabled.
func openAudit() (*logger.AuditLogger, error) {
	if noAudit {
		return nil, nil
	}
	path := logPath
	if path == "" {
		path = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return logger.New(path)
}

// auditResult appends one event for a validation call. Audit failures are
// reported but never change the validation outcome.
func auditResult(log *logger.AuditLogger, input string, res promptshield.Result, verr error) {
	if log == nil {
		return
	}

	event := logger.AuditEvent{
		Input:    input,
		Valid:    res.Valid,
		Warnings: res.Warnings(),
	}
	seen := make(map[string]bool)
	for _, v := range res.Violations {
		if !seen[string(v.Category)] {
			seen[string(v.Category)] = true
			event.Categories = append(event.Categories, string(v.Category))
		}
		event.RuleIDs = append(event.RuleIDs, v.RuleID)
	}
	if verr != nil {
		event.Error = verr.Error()
	}

	if err := log.Log(event); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log write failed: %v\n", err)
	}
}
