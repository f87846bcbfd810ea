package main

import (
	"context"
	"log"
	"time"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/domain"
	"github.com/storepulse/storepulse/infrastructure/config"
	"github.com/storepulse/storepulse/infrastructure/persistence"
	"github.com/storepulse/storepulse/infrastructure/persistence/memory"
	"github.com/storepulse/storepulse/infrastructure/persistence/surreal"
	"github.com/storepulse/storepulse/infrastructure/service/logger"
)

// Seeds the store with a published template, one completed audit against it
// and a day of reports. Useful for pointing a fresh SurrealDB instance at
// the data layer.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.NewStructuredLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "storepulse-seed",
	})

	ctx := context.Background()

	var store outbound.RecordStore
	if cfg.StoreBackend == config.BackendMemory {
		store = memory.New()
	} else {
		surrealStore, err := surreal.Connect(ctx, surreal.Config{
			URL:       cfg.SurrealURL,
			Namespace: cfg.SurrealNamespace,
			Database:  cfg.SurrealDatabase,
			Username:  cfg.SurrealUser,
			Password:  cfg.SurrealPass,
		}, appLogger)
		if err != nil {
			log.Fatalf("failed to connect to store: %v", err)
		}
		defer surrealStore.Close(context.Background())
		store = surrealStore
	}

	factory := persistence.NewRepositoryFactory(store, appLogger)
	templates := factory.Templates()
	audits := factory.Audits()
	reports := factory.Reports()

	template := domain.NewTemplate(
		"Morning safety walk-through",
		domain.TemplateCategorySafety,
		[]string{"S42", "S17"},
		10,
	)
	template, err = templates.Save(ctx, template)
	if err != nil {
		log.Fatalf("failed to seed template: %v", err)
	}
	template, err = templates.Publish(ctx, template)
	if err != nil {
		log.Fatalf("failed to publish template: %v", err)
	}

	audit, err := audits.Save(ctx, domain.NewAudit("S42", template.ID))
	if err != nil {
		log.Fatalf("failed to seed audit: %v", err)
	}
	audit, err = audits.Start(ctx, audit)
	if err != nil {
		log.Fatalf("failed to start audit: %v", err)
	}
	audit, err = audits.AddResponse(ctx, audit, domain.ResponseEntry{
		QuestionID: "q-exits-clear",
		Answer:     "yes",
		Score:      5,
		RecordedAt: time.Now(),
	})
	if err != nil {
		log.Fatalf("failed to add response: %v", err)
	}
	if _, err = audits.Complete(ctx, audit, 5, 5); err != nil {
		log.Fatalf("failed to complete audit: %v", err)
	}

	report := domain.NewReport("S42", time.Now().Truncate(24*time.Hour))
	report.Sales = 15240.50
	report.Visitors = 412
	report.Notes = "seeded"
	if _, err = reports.Save(ctx, report); err != nil {
		log.Fatalf("failed to seed report: %v", err)
	}

	log.Printf("seeded template %s with one audit and one report", template.ID)
}
