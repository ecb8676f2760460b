package repository

import (
	"context"
	"database/sql"

	"trade-navigator-service/internal/entity"
)

// UsageRepository persists per-tenant usage history rows.
type UsageRepository struct {
	db *sql.DB
}

// NewUsageRepository creates a new instance of UsageRepository.
func NewUsageRepository(db *sql.DB) *UsageRepository {
	return &UsageRepository{db}
}

// InsertUsage records one optimization run for a tenant.
func (r *UsageRepository) InsertUsage(ctx context.Context, record *entity.UsageRecord) error {
	query := `INSERT INTO usage_history (user_id, product_id, result_id, target_margin, scenario_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		record.UserID, record.ProductID, record.ResultID,
		record.TargetMargin, record.ScenarioCount, record.CreatedAt)
	return err
}

// ListRecentByUser returns the tenant's newest usage rows, most recent first.
func (r *UsageRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]entity.UsageRecord, error) {
	query := `SELECT id, user_id, product_id, result_id, target_margin, scenario_count, created_at
		FROM usage_history WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []entity.UsageRecord{}
	for rows.Next() {
		var record entity.UsageRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.ProductID, &record.ResultID,
			&record.TargetMargin, &record.ScenarioCount, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
