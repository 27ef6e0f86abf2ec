package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportJSON bool

var exportCmd = &cobra.Command{
	Use:   "export-config",
	Short: "Export the rule set for an external guardrail client",
	Long: `Serialize the compiled rule set (category, action, patterns) plus the
pipeline settings into the declarative document an external hosted-guardrail
client consumes. YAML by default; --json for JSON.`,
	RunE: exportCommand,
}

func init() {
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Emit JSON instead of YAML")
	rootCmd.AddCommand(exportCmd)
}

func exportCommand(cmd *cobra.Command, args []string) error {
	shield, err := buildShield()
	if err != nil {
		return err
	}

	doc := shield.GuardrailConfig()

	if exportJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
