// Command migrate applies, rolls back or lists the embedded database
// migrations. The server applies pending migrations on start unless
// DATABASE_MIGRATE_ON_START is false; this command is for the other cases.
//
// Usage:
//
//	migrate [up|down|status]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynotes-backend/internal/app"
	"github.com/heartmarshall/mynotes-backend/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	migrator, err := postgres.NewMigrator(cfg.Database.DSN, logger)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer migrator.Close()

	if err := run(ctx, migrator, command); err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		migrator.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, m *postgres.Migrator, command string) error {
	switch command {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%-8s %d %s\n", state, s.Version, s.Path)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
}
