package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitchallenge/internal/challenges"
	"github.com/2beens/fitchallenge/internal/config"
	"github.com/2beens/fitchallenge/internal/db"
	"github.com/2beens/fitchallenge/internal/logging"
)

func main() {
	fmt.Println("starting catalog seed ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	catalogPath := flag.String("catalog", "./assets/catalog.toml", "path for the TOML challenge catalog")
	migrate := flag.Bool("migrate", true, "apply db migrations before seeding")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	catalog, err := challenges.LoadCatalogFile(*catalogPath)
	if err != nil {
		log.Fatalf("load catalog: %s", err)
	}
	log.Infof("loaded %d challenges from %s", len(catalog), *catalogPath)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if *migrate {
		if err := db.Migrate(ctx, dbPool); err != nil {
			log.Fatalf("migrate: %s", err)
		}
	}

	inserted, err := challenges.NewCatalogRepo(dbPool).Seed(ctx, catalog)
	if err != nil {
		log.Fatalf("seed: %s", err)
	}

	log.Infof("catalog seeded: %d inserted, %d already present", inserted, len(catalog)-inserted)
}
