package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vikunalabs/camt-reporter/internal/config"
	"github.com/vikunalabs/camt-reporter/internal/domain"
	"github.com/vikunalabs/camt-reporter/internal/notification"
	"github.com/vikunalabs/camt-reporter/internal/report"
	"github.com/vikunalabs/camt-reporter/internal/validation"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the pipeline once for an envelope file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&inputFile, "input", "", "Path to the input envelope (JSON)")
	generateCmd.Flags().StringVar(&outputFile, "output", "", "Path for the generated XML (default stdout)")
	generateCmd.Flags().StringVar(&version, "version", "", "Schema version (default from config)")
	generateCmd.MarkFlagRequired("input")
}

func runGenerate() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read envelope: %w", err)
	}
	var env domain.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("parse envelope: %w", err)
	}

	versionName := cfg.ActiveVersion
	if version != "" {
		versionName = version
	}
	schemaVersion, err := report.ParseVersion(versionName)
	if err != nil {
		return err
	}

	mapper := notification.NewMapper(notification.Config{
		Servicer: notification.Institution{
			BIC:  cfg.Servicer.BIC,
			Name: cfg.Servicer.Name,
		},
		Recipient: notification.Party{
			ID:         cfg.Recipient.ID,
			Name:       cfg.Recipient.Name,
			SchemeCode: notification.DefaultSchemeCode,
		},
		ReportingCurrency: cfg.ReportingCurrency,
	}, notification.NewZoneClock(loc))

	path, ok := cfg.Schemas[string(schemaVersion)]
	if !ok {
		return fmt.Errorf("no schema path configured for version %s", schemaVersion)
	}
	registry, err := report.NewRegistry(mapper, map[report.SchemaVersion]string{schemaVersion: path})
	if err != nil {
		return err
	}
	generator, err := registry.Generator(schemaVersion)
	if err != nil {
		return err
	}

	validator := validation.NewValidator(nil)
	rows, err := validator.Validate(env.Report.Rows, env.ReportType)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "No data to report for %s/%s, nothing generated\n",
			env.ReportType, env.Report.ID)
		return nil
	}

	doc, err := generator.GenerateReport(rows, report.Context{
		ReportType: env.ReportType,
		ReportID:   env.Report.ID,
		Seq:        notification.NewSequence(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			fmt.Fprintf(os.Stderr, "No data to report for %s/%s, nothing generated\n",
				env.ReportType, env.Report.ID)
			return nil
		}
		return err
	}

	if outputFile == "" {
		_, err = os.Stdout.Write(doc)
		return err
	}
	if err := os.WriteFile(outputFile, doc, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d bytes to %s (%s)\n", len(doc), outputFile, schemaVersion)
	return nil
}
