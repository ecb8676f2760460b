package service

import (
	"context"

	"trade-navigator-service/internal/entity"
)

// SupplierStore is the persistence surface for supplier contacts.
type SupplierStore interface {
	CreateSupplier(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error)
	GetSupplierByID(ctx context.Context, userID string, id int) (*entity.Supplier, error)
	ListSuppliers(ctx context.Context, userID string) ([]entity.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error)
	DeleteSupplier(ctx context.Context, userID string, id int) error
}

// SupplierService manages each tenant's supplier directory.
type SupplierService struct {
	suppliers SupplierStore
}

// NewSupplierService creates a new instance of SupplierService.
func NewSupplierService(suppliers SupplierStore) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// CreateSupplier validates and stores a new supplier for the tenant.
func (s *SupplierService) CreateSupplier(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	created, err := s.suppliers.CreateSupplier(ctx, supplier)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating supplier")
		return nil, err
	}
	return created, nil
}

// GetSupplier retrieves one of the tenant's suppliers.
func (s *SupplierService) GetSupplier(ctx context.Context, userID string, id int) (*entity.Supplier, error) {
	supplier, err := s.suppliers.GetSupplierByID(ctx, userID, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting supplier by ID %d", id)
		return nil, err
	}
	return supplier, nil
}

// ListSuppliers returns all suppliers owned by the tenant.
func (s *SupplierService) ListSuppliers(ctx context.Context, userID string) ([]entity.Supplier, error) {
	suppliers, err := s.suppliers.ListSuppliers(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing suppliers for user %s", userID)
		return nil, err
	}
	return suppliers, nil
}

// UpdateSupplier validates and rewrites one of the tenant's suppliers.
func (s *SupplierService) UpdateSupplier(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.suppliers.UpdateSupplier(ctx, supplier)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating supplier %d", supplier.ID)
		return nil, err
	}
	return updated, nil
}

// DeleteSupplier removes one of the tenant's suppliers.
func (s *SupplierService) DeleteSupplier(ctx context.Context, userID string, id int) error {
	if err := s.suppliers.DeleteSupplier(ctx, userID, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting supplier %d", id)
		return err
	}
	return nil
}
