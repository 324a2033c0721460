package main

import (
	"log"
	"net/http"
	"os"

	"github.com/vikunalabs/camt-reporter/internal/api"
	"github.com/vikunalabs/camt-reporter/internal/config"
	"github.com/vikunalabs/camt-reporter/internal/delivery"
	"github.com/vikunalabs/camt-reporter/internal/flags"
	"github.com/vikunalabs/camt-reporter/internal/metrics"
	"github.com/vikunalabs/camt-reporter/internal/notification"
	"github.com/vikunalabs/camt-reporter/internal/orchestrator"
	"github.com/vikunalabs/camt-reporter/internal/report"
	"github.com/vikunalabs/camt-reporter/internal/validation"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to resolve timezone: %v", err)
	}
	clock := notification.NewZoneClock(loc)

	log.Printf("Initializing database at %s", cfg.DBPath)
	db, err := delivery.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init DB: %v", err)
	}
	defer db.Close()

	// Build the pipeline. Schema compilation failures are fatal here: a
	// generator instance must not exist without its compiled schema.
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
	}, clock)

	schemaPaths := make(map[report.SchemaVersion]string, len(cfg.Schemas))
	for version, path := range cfg.Schemas {
		v, err := report.ParseVersion(version)
		if err != nil {
			log.Fatalf("Invalid schema config: %v", err)
		}
		schemaPaths[v] = path
	}

	registry, err := report.NewRegistry(mapper, schemaPaths)
	if err != nil {
		log.Fatalf("Failed to build report registry: %v", err)
	}

	activeVersion, err := report.ParseVersion(cfg.ActiveVersion)
	if err != nil {
		log.Fatalf("Invalid active version: %v", err)
	}
	generator, err := registry.Generator(activeVersion)
	if err != nil {
		log.Fatalf("Active version not registered: %v", err)
	}

	// Collaborators.
	archive := delivery.NewArchive(db)
	counters := metrics.NewCounters()
	featureFlags := flags.NewStatic(cfg.FeatureFlags)
	validator := validation.NewValidator(nil)

	orch := orchestrator.New(validator, generator, activeVersion, counters, featureFlags, archive, clock)

	router := api.NewRouter(orch, archive, counters)

	log.Printf("CAMT Notification Report Engine")
	log.Printf("Active schema version: %s (registered: %v)", activeVersion, registry.Versions())
	log.Printf("Listening on http://localhost:%s", cfg.Port)
	log.Printf("")
	log.Printf("Endpoints:")
	log.Printf("  POST   /api/v1/reports/generate")
	log.Printf("  GET    /api/v1/reports")
	log.Printf("  GET    /api/v1/reports/{id}/document")
	log.Printf("  GET    /api/v1/outcomes/summary")
	log.Printf("  GET    /api/v1/metrics")

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
