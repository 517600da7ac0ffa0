package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/mynotes-backend/migrations"
)

// Migrator applies the embedded goose migrations.
// goose works on database/sql, so it opens its own short-lived connection.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
	log      *slog.Logger
}

// NewMigrator opens dsn through the pgx stdlib driver and prepares a goose provider.
func NewMigrator(dsn string, log *slog.Logger) (*Migrator, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	return &Migrator{db: db, provider: provider, log: log}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		m.log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	if r != nil {
		m.log.InfoContext(ctx, "migration rolled back", slog.Int64("version", r.Source.Version))
	}
	return nil
}

// MigrationStatus is one row of Status output.
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

// Status reports every known migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

// Close releases the migration connection.
func (m *Migrator) Close() error {
	return m.db.Close()
}
