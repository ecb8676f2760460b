package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"trade-navigator-service/internal/entity"
)

// ErrNotFound marks lookups that matched no row for the requesting tenant.
var ErrNotFound = errors.New("not found")

// ResultRepository persists optimization results as JSON documents keyed by
// product id and creation time.
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new instance of ResultRepository.
func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db}
}

// InsertResult stores one optimization run.
func (r *ResultRepository) InsertResult(ctx context.Context, userID string, result *entity.OptimizationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	query := `INSERT INTO optimization_results (id, product_id, user_id, payload, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, result.ID, result.Product.ID, userID, payload, result.CreatedAt)
	return err
}

// FindRecentResult returns the most recently stored result for a product, or
// nil when none exists. Freshness is the caller's decision.
func (r *ResultRepository) FindRecentResult(ctx context.Context, productID string) (*entity.OptimizationResult, error) {
	query := `SELECT payload FROM optimization_results WHERE product_id = ? ORDER BY created_at DESC LIMIT 1`
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var result entity.OptimizationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
