package main

import (
	"context"
	"flag"
	"os"
	"time"

	"kinoteka/proj/internal/config"
	"kinoteka/proj/internal/lib/logger"
	"kinoteka/proj/internal/migrate"
	"kinoteka/proj/internal/storage/postgres"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()

	_ = godotenv.Load() // best-effort
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	if cfg.DB.Migrate {
		if err := migrate.Up(cfg.DB.Dsn); err != nil {
			log.Error("failed to apply migrations", "error", err.Error())
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		log.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer storage.Conn.Close()
	log.Info("database connection established")

	app := NewApplication(cfg, log, storage)
	if err := app.serve(); err != nil {
		log.Error("server stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
