package visitor

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// steps run in order; each is recorded in schema_migrations once applied.
var steps = []migrationStep{
	{
		Name: "create_table_visitors",
		SQL: `CREATE TABLE IF NOT EXISTS visitors (
  id                       TEXT        PRIMARY KEY,
  newsletter_dismissed_at  TIMESTAMPTZ,
  newsletter_subscribed_at TIMESTAMPTZ,
  created_at               TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at               TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_saved_jobs",
		SQL: `CREATE TABLE IF NOT EXISTS saved_jobs (
  visitor_id   TEXT        NOT NULL REFERENCES visitors (id) ON DELETE CASCADE,
  career_id    TEXT        NOT NULL,
  slug         TEXT        NOT NULL,
  title        TEXT        NOT NULL,
  location     TEXT        NOT NULL DEFAULT '',
  job_type     TEXT        NOT NULL DEFAULT '',
  salary_range TEXT        NOT NULL DEFAULT '',
  saved_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (visitor_id, career_id)
);`,
	},
	{
		Name: "create_index_saved_jobs_saved_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_saved_jobs_saved_at ON saved_jobs (visitor_id, saved_at);`,
	},
}

const (
	createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
  name       TEXT        PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`
	selectApplied = `SELECT name FROM schema_migrations`
	insertApplied = `INSERT INTO schema_migrations (name) VALUES ($1)`
)

// Migrate applies pending steps. Each step and its bookkeeping row commit
// together, so a failed run resumes at the failing step.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()

	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedSteps(ctx, db)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, step := range steps {
		if applied[step.Name] {
			continue
		}

		stepStart := time.Now()

		if err := applyStep(ctx, db, step); err != nil {
			logger.ErrorContext(ctx, "migration step failed",
				slog.String("migration_step", step.Name),
				slog.Any("error", err),
			)
			return count, fmt.Errorf("migration step %s: %w", step.Name, err)
		}

		count++

		logger.InfoContext(ctx, "migration step applied",
			slog.String("migration_step", step.Name),
			slog.Duration("duration", time.Since(stepStart)),
		)
	}

	logger.InfoContext(ctx, "migrations complete",
		slog.Int("applied", count),
		slog.Duration("duration", time.Since(start)),
	)

	return count, nil
}

func appliedSteps(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, selectApplied)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[string]bool)

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		applied[name] = true
	}

	return applied, rows.Err()
}

func applyStep(ctx context.Context, db *sql.DB, step migrationStep) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.ExecContext(ctx, insertApplied, step.Name); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
