package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	logPath    string
	noAudit    bool
)

var rootCmd = &cobra.Command{
	Use:   "promptshield",
	Short: "PromptShield - Input validation gateway for conversational agents",
	Long: `PromptShield validates and sanitizes free-text user input before it
reaches an upstream conversational agent. It masks profanity, rejects hate
speech, harassment, violent content and blocked phrases, and refuses
SQL/code/template injection attempts — all with deterministic pattern
matching, no model calls.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML file (default: ~/.promptshield/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to audit log file (default: ~/.promptshield/audit.jsonl)")
	rootCmd.PersistentFlags().BoolVar(&noAudit, "no-audit", false, "Disable the JSONL audit trail")
}

func Execute() error {
	return rootCmd.Execute()
}
