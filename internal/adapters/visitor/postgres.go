package visitor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

const storeName = "visitor-store"

var (
	_ ports.VisitorStore    = (*PostgresStore)(nil)
	_ ports.OptionalChecker = (*PostgresStore)(nil)
)

// PostgresStore implements ports.VisitorStore with database/sql.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const (
	selectVisitor = `
		SELECT newsletter_dismissed_at, newsletter_subscribed_at
		FROM visitors
		WHERE id = $1`

	selectSavedJobs = `
		SELECT career_id, slug, title, location, job_type, salary_range, saved_at
		FROM saved_jobs
		WHERE visitor_id = $1
		ORDER BY saved_at, career_id`

	upsertVisitor = `
		INSERT INTO visitors (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING`

	insertSavedJob = `
		INSERT INTO saved_jobs (visitor_id, career_id, slug, title, location, job_type, salary_range, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (visitor_id, career_id) DO NOTHING`

	deleteSavedJob = `
		DELETE FROM saved_jobs
		WHERE visitor_id = $1 AND career_id = $2`

	markDismissed = `
		INSERT INTO visitors (id, newsletter_dismissed_at) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET newsletter_dismissed_at = EXCLUDED.newsletter_dismissed_at, updated_at = now()`

	markSubscribed = `
		INSERT INTO visitors (id, newsletter_subscribed_at) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET newsletter_subscribed_at = COALESCE(visitors.newsletter_subscribed_at, EXCLUDED.newsletter_subscribed_at),
		    updated_at = now()`
)

// Load implements ports.VisitorStore.
func (s *PostgresStore) Load(ctx context.Context, visitorID string) (*domain.VisitorState, error) {
	state := &domain.VisitorState{VisitorID: visitorID}

	var dismissed, subscribed sql.NullTime

	err := s.db.QueryRowContext(ctx, selectVisitor, visitorID).Scan(&dismissed, &subscribed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return state, nil
	case err != nil:
		return nil, s.unavailable("load visitor", err)
	}

	state.NewsletterDismissedAt = timePtr(dismissed)
	state.NewsletterSubscribedAt = timePtr(subscribed)

	rows, err := s.db.QueryContext(ctx, selectSavedJobs, visitorID)
	if err != nil {
		return nil, s.unavailable("load saved jobs", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			job     domain.SavedJob
			jobType string
		)

		if err := rows.Scan(&job.CareerID, &job.Slug, &job.Title, &job.Location, &jobType, &job.SalaryRange, &job.SavedAt); err != nil {
			return nil, s.unavailable("scan saved job", err)
		}

		job.JobType = domain.JobType(jobType)
		state.SavedJobs = append(state.SavedJobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, s.unavailable("load saved jobs", err)
	}

	return state, nil
}

// SaveJob implements ports.VisitorStore.
func (s *PostgresStore) SaveJob(ctx context.Context, visitorID string, job domain.SavedJob) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.unavailable("save job", err)
	}

	if _, err := tx.ExecContext(ctx, upsertVisitor, visitorID); err != nil {
		_ = tx.Rollback()
		return s.unavailable("save job", err)
	}

	if _, err := tx.ExecContext(ctx, insertSavedJob,
		visitorID,
		job.CareerID,
		job.Slug,
		job.Title,
		job.Location,
		string(job.JobType),
		job.SalaryRange,
		job.SavedAt,
	); err != nil {
		_ = tx.Rollback()
		return s.unavailable("save job", err)
	}

	if err := tx.Commit(); err != nil {
		return s.unavailable("save job", err)
	}

	return nil
}

// RemoveJob implements ports.VisitorStore.
func (s *PostgresStore) RemoveJob(ctx context.Context, visitorID, careerID string) error {
	if _, err := s.db.ExecContext(ctx, deleteSavedJob, visitorID, careerID); err != nil {
		return s.unavailable("remove job", err)
	}

	return nil
}

// MarkNewsletterDismissed implements ports.VisitorStore.
func (s *PostgresStore) MarkNewsletterDismissed(ctx context.Context, visitorID string, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, markDismissed, visitorID, at); err != nil {
		return s.unavailable("mark newsletter dismissed", err)
	}

	return nil
}

// MarkNewsletterSubscribed implements ports.VisitorStore.
func (s *PostgresStore) MarkNewsletterSubscribed(ctx context.Context, visitorID string, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, markSubscribed, visitorID, at); err != nil {
		return s.unavailable("mark newsletter subscribed", err)
	}

	return nil
}

// Name implements ports.HealthChecker.
func (s *PostgresStore) Name() string { return storeName }

// Check implements ports.HealthChecker.
func (s *PostgresStore) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Optional implements ports.OptionalChecker. Without the store visitors lose
// saved jobs but pages still render.
func (s *PostgresStore) Optional() bool { return true }

func (s *PostgresStore) unavailable(op string, err error) error {
	return domain.NewUnavailableError(storeName, fmt.Sprintf("%s: %v", op, err))
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time

	return &v
}
