package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/infrastructure/config"
	"github.com/storepulse/storepulse/infrastructure/persistence"
	"github.com/storepulse/storepulse/infrastructure/persistence/memory"
	"github.com/storepulse/storepulse/infrastructure/persistence/surreal"
	"github.com/storepulse/storepulse/infrastructure/service/logger"
)

// Version and build information
var (
	Version   = "development"
	BuildTime = "unknown"
)

func main() {
	var (
		version = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("storepulse data layer\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewStructuredLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "storepulse",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store outbound.RecordStore
	switch cfg.StoreBackend {
	case config.BackendMemory:
		store = memory.New()
	default:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		surrealStore, err := surreal.Connect(connectCtx, surreal.Config{
			URL:       cfg.SurrealURL,
			Namespace: cfg.SurrealNamespace,
			Database:  cfg.SurrealDatabase,
			Username:  cfg.SurrealUser,
			Password:  cfg.SurrealPass,
		}, appLogger)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to store: %v", err)
		}
		defer surrealStore.Close(context.Background())
		store = surrealStore
	}

	factory := persistence.NewRepositoryFactory(store, appLogger)

	// Smoke query: list the currently active templates
	templates, err := factory.Templates().Active(ctx)
	if err != nil {
		appLogger.Error(ctx, "smoke query failed", err, nil)
		os.Exit(1)
	}
	appLogger.Info(ctx, "store reachable", map[string]interface{}{
		"backend":          cfg.StoreBackend,
		"active_templates": len(templates),
	})
}
