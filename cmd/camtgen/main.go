// camtgen is a one-shot CLI around the report pipeline: it reads an input
// envelope from disk, runs validation, mapping and schema-validated
// serialization, and writes the XML document to a file or stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	inputFile  string
	outputFile string
	version    string
)

var rootCmd = &cobra.Command{
	Use:   "camtgen",
	Short: "Generate CAMT notification documents from transaction report rows",
	Long: `camtgen runs the CAMT report pipeline once, outside the message-driven
service: it reads an input envelope (JSON) from disk, validates and maps the
rows, serializes the document against the configured XSD and writes the
resulting XML.

Example:
  camtgen generate --input envelope.json --output report.xml
  camtgen generate --input envelope.json --version camt.054.001.08`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
}
