package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/James202017/real-estate-bots/core/logger"
	"log/slog"
)

// Repository persists finished leads in the archive database.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps an open archive connection.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const insertLeadQuery = `
INSERT INTO leads (form_id, user_id, username, payload)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

// Insert stores one lead and fills its ID and CreatedAt.
func (r *Repository) Insert(ctx context.Context, lead *Lead) error {
	start := time.Now()
	row := r.db.QueryRowxContext(ctx, insertLeadQuery,
		lead.FormID, lead.UserID, lead.Username, lead.Payload,
	)
	if err := row.Scan(&lead.ID, &lead.CreatedAt); err != nil {
		logger.LEADS.Error("lead insert failed",
			slog.String("event", "lead.insert"),
			slog.String("form_id", lead.FormID),
			slog.Int64("user_id", lead.UserID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("insert lead: %w", err)
	}
	logger.LEADS.Debug("lead archived",
		slog.String("event", "lead.insert"),
		slog.String("form_id", lead.FormID),
		slog.Int64("lead_id", lead.ID),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return nil
}

const recentLeadsQuery = `
SELECT id, form_id, user_id, username, payload, created_at
FROM leads
WHERE form_id = $1
ORDER BY created_at DESC
LIMIT $2`

// Recent returns the latest leads for one questionnaire, newest first.
func (r *Repository) Recent(ctx context.Context, formID string, limit int) ([]Lead, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []Lead
	if err := r.db.SelectContext(ctx, &out, recentLeadsQuery, formID, limit); err != nil {
		return nil, fmt.Errorf("select recent leads: %w", err)
	}
	return out, nil
}

// Count reports how many leads the questionnaire has collected in total.
func (r *Repository) Count(ctx context.Context, formID string) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM leads WHERE form_id = $1`, formID); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}
