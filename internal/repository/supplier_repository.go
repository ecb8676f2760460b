package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"trade-navigator-service/internal/entity"
)

// SupplierRepository stores supplier contacts. Every query is scoped to the
// owning tenant so one user can never read or mutate another user's rows.
type SupplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository creates a new instance of SupplierRepository.
func NewSupplierRepository(db *sql.DB) *SupplierRepository {
	return &SupplierRepository{db}
}

// CreateSupplier inserts a supplier and returns it with the generated id.
func (r *SupplierRepository) CreateSupplier(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	now := time.Now().UTC()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	query := `INSERT INTO suppliers (user_id, name, contact_name, email, phone, country, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		supplier.UserID, supplier.Name, supplier.ContactName, supplier.Email,
		supplier.Phone, supplier.Country, supplier.Notes, supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating supplier: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error fetching supplier id: %w", err)
	}
	supplier.ID = int(id)
	return supplier, nil
}

// GetSupplierByID fetches one supplier owned by the given tenant.
func (r *SupplierRepository) GetSupplierByID(ctx context.Context, userID string, id int) (*entity.Supplier, error) {
	query := `SELECT id, user_id, name, contact_name, email, phone, country, notes, created_at, updated_at
		FROM suppliers WHERE id = ? AND user_id = ?`
	supplier := entity.Supplier{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&supplier.ID, &supplier.UserID, &supplier.Name, &supplier.ContactName,
		&supplier.Email, &supplier.Phone, &supplier.Country, &supplier.Notes,
		&supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("supplier %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &supplier, nil
}

// ListSuppliers returns all suppliers owned by the tenant, newest first.
func (r *SupplierRepository) ListSuppliers(ctx context.Context, userID string) ([]entity.Supplier, error) {
	query := `SELECT id, user_id, name, contact_name, email, phone, country, notes, created_at, updated_at
		FROM suppliers WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := []entity.Supplier{}
	for rows.Next() {
		var supplier entity.Supplier
		if err := rows.Scan(&supplier.ID, &supplier.UserID, &supplier.Name, &supplier.ContactName,
			&supplier.Email, &supplier.Phone, &supplier.Country, &supplier.Notes,
			&supplier.CreatedAt, &supplier.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}

// UpdateSupplier rewrites a supplier's mutable fields. The row must already
// belong to the tenant on the entity or the update reports ErrNotFound.
func (r *SupplierRepository) UpdateSupplier(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	if _, err := r.GetSupplierByID(ctx, supplier.UserID, supplier.ID); err != nil {
		return nil, err
	}
	supplier.UpdatedAt = time.Now().UTC()

	query := `UPDATE suppliers SET name = ?, contact_name = ?, email = ?, phone = ?, country = ?, notes = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		supplier.Name, supplier.ContactName, supplier.Email, supplier.Phone,
		supplier.Country, supplier.Notes, supplier.UpdatedAt,
		supplier.ID, supplier.UserID)
	if err != nil {
		return nil, fmt.Errorf("error updating supplier %d: %w", supplier.ID, err)
	}
	return r.GetSupplierByID(ctx, supplier.UserID, supplier.ID)
}

// DeleteSupplier removes one supplier owned by the tenant.
func (r *SupplierRepository) DeleteSupplier(ctx context.Context, userID string, id int) error {
	query := `DELETE FROM suppliers WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting supplier %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("supplier %d: %w", id, ErrNotFound)
	}
	return nil
}
