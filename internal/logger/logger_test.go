package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAuditLogger_WritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	l, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	events := []AuditEvent{
		{Input: "clean input", Valid: true},
		{Input: "'; DROP TABLE users; --", Valid: false,
			Categories: []string{"sql_injection"},
			RuleIDs:    []string{"sql-ddl-table"},
			Error:      "input rejected"},
	}
	for _, e := range events {
		if err := l.Log(e); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening log: %v", err)
	}
	defer f.Close()

	var got []AuditEvent
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e AuditEvent
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("malformed line %q: %v", scanner.Text(), err)
		}
		got = append(got, e)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got))
	}
	if got[0].Timestamp == "" || got[1].Timestamp == "" {
		t.Error("timestamps must be filled in")
	}
	if !got[0].Valid || got[1].Valid {
		t.Error("valid flags not preserved")
	}
	if len(got[1].Categories) != 1 || got[1].Categories[0] != "sql_injection" {
		t.Errorf("categories not preserved: %v", got[1].Categories)
	}
}

func TestAuditLogger_RedactsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	l, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	if err := l.Log(AuditEvent{Input: "here is my api_key=supersecret123456", Valid: true}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if strings.Contains(string(data), "supersecret123456") {
		t.Errorf("secret written to audit log: %s", data)
	}
	if !strings.Contains(string(data), "[REDACTED]") {
		t.Errorf("expected redaction placeholder: %s", data)
	}
}

func TestAuditLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	for i := 0; i < 2; i++ {
		l, err := New(path)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := l.Log(AuditEvent{Input: "hello", Valid: true}); err != nil {
			t.Fatalf("Log: %v", err)
		}
		l.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Errorf("expected 2 lines after reopen, got %d", n)
	}
}
