package cli

import (
	"bufio"
	"fmt"
	"os"

	promptshield "github.com/parlaworks/promptshield"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Interactive loop — validate lines as you type them",
	Long: `Read lines from the terminal and run each through the validation
pipeline, printing the sanitized form or the rejection reasons. This is the
same path an agent front-end takes before forwarding a topic upstream.

Type "exit" or "quit" (or press Ctrl-D) to leave.`,
	RunE: promptCommand,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func promptCommand(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("prompt requires an interactive terminal; pipe input to 'check' instead")
	}

	shield, err := buildShield()
	if err != nil {
		return err
	}

	audit, err := openAudit()
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	if audit != nil {
		defer audit.Close()
	}

	fmt.Println("PromptShield interactive validation. Type a line; 'exit' to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "exit" || line == "quit" {
			return nil
		}

		res := shield.ValidateInput(line)
		if !res.Valid {
			verr := &promptshield.ValidationError{Violations: res.Violations}
			auditResult(audit, line, res, verr)
			fmt.Println("✗ rejected:")
			for _, v := range res.Violations {
				fmt.Printf("  - %s\n", v.Message)
			}
			continue
		}

		auditResult(audit, line, res, nil)
		for _, w := range res.Warnings() {
			fmt.Printf("⚠ %s\n", w)
		}
		fmt.Printf("✓ %s\n", res.Sanitized)
	}
}
