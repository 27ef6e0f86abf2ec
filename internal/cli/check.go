package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	promptshield "github.com/parlaworks/promptshield"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Validate one input and print the sanitized form",
	Long: `Run the validation pipeline over a single input. Reads the text from
the arguments, or from stdin when no arguments are given.

  promptshield check "damn this bill is stupid"
  echo "some text" | promptshield check

Exit status is 0 for valid (possibly sanitized) input and 1 for rejected input.`,
	RunE:         checkCommand,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkCommand(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
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

	res := shield.ValidateInput(text)

	if !res.Valid {
		verr := &promptshield.ValidationError{Violations: res.Violations}
		auditResult(audit, text, res, verr)

		fmt.Fprintln(os.Stderr, "✗ input rejected")
		for _, v := range res.Violations {
			fmt.Fprintf(os.Stderr, "  - %s\n", v.Message)
		}
		return errors.New("input rejected")
	}

	auditResult(audit, text, res, nil)

	for _, w := range res.Warnings() {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", w)
	}
	fmt.Println(res.Sanitized)
	return nil
}
