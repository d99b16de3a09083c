package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/JeannRezende7/MarcaHora/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := strings.Replace(cfg.DB.BuildDSN(), "postgres://", "pgx5://", 1)
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		slog.Error("failed to initialize migrations", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		slog.Error("unknown direction, expected up or down", "direction", direction)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		slog.Error("migration failed", "direction", direction, "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "direction", direction)
}
