// Package logger appends one JSONL event per validation call. The log is
// write-only: nothing in the pipeline reads it back, so there is no
// violation-history state to keep consistent.
package logger

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/parlaworks/promptshield/internal/redact"
)

// AuditEvent records the outcome of one validation call.
type AuditEvent struct {
	Timestamp  string   `json:"timestamp"`
	Input      string   `json:"input"`
	Valid      bool     `json:"valid"`
	Categories []string `json:"categories,omitempty"`
	RuleIDs    []string `json:"rule_ids,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type AuditLogger struct {
	file *os.File
	mu   sync.Mutex
}

func New(path string) (*AuditLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return &AuditLogger{file: file}, nil
}

func (l *AuditLogger) Log(event AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	// Redact secrets before anything hits disk
	event.Input = redact.Redact(event.Input)
	event.Warnings = redact.RedactAll(event.Warnings)
	if event.Error != "" {
		event.Error = redact.Redact(event.Error)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *AuditLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
