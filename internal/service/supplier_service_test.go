package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-navigator-service/internal/entity"
	"trade-navigator-service/internal/repository"
)

type fakeSupplierStore struct {
	err        error
	supplier   *entity.Supplier
	suppliers  []entity.Supplier
	created    []*entity.Supplier
	deletedIDs []int
}

func (f *fakeSupplierStore) CreateSupplier(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, supplier)
	created := *supplier
	created.ID = 7
	return &created, nil
}

func (f *fakeSupplierStore) GetSupplierByID(ctx context.Context, userID string, id int) (*entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.supplier, nil
}

func (f *fakeSupplierStore) ListSuppliers(ctx context.Context, userID string) ([]entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suppliers, nil
}

func (f *fakeSupplierStore) UpdateSupplier(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return supplier, nil
}

func (f *fakeSupplierStore) DeleteSupplier(ctx context.Context, userID string, id int) error {
	if f.err != nil {
		return f.err
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func TestCreateSupplier(t *testing.T) {
	store := &fakeSupplierStore{}
	svc := NewSupplierService(store)

	supplier := &entity.Supplier{UserID: "user-1", Name: "Acme Trading", Email: "sales@acme.example"}
	created, err := svc.CreateSupplier(context.Background(), supplier)
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "user-1", created.UserID)
	require.Len(t, store.created, 1)
}

func TestCreateSupplier_RejectsInvalidSupplier(t *testing.T) {
	store := &fakeSupplierStore{}
	svc := NewSupplierService(store)

	_, err := svc.CreateSupplier(context.Background(), &entity.Supplier{UserID: "user-1"})
	require.Error(t, err)
	assert.Empty(t, store.created, "invalid suppliers must never reach the store")
}

func TestUpdateSupplier_RejectsInvalidEmail(t *testing.T) {
	svc := NewSupplierService(&fakeSupplierStore{})

	supplier := &entity.Supplier{ID: 7, UserID: "user-1", Name: "Acme Trading", Email: "bogus"}
	_, err := svc.UpdateSupplier(context.Background(), supplier)
	assert.Error(t, err)
}

func TestGetSupplier_PassesThroughNotFound(t *testing.T) {
	store := &fakeSupplierStore{err: fmt.Errorf("supplier 9: %w", repository.ErrNotFound)}
	svc := NewSupplierService(store)

	_, err := svc.GetSupplier(context.Background(), "user-1", 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestListSuppliers(t *testing.T) {
	store := &fakeSupplierStore{suppliers: []entity.Supplier{
		{ID: 2, Name: "Beta Goods"},
		{ID: 1, Name: "Acme Trading"},
	}}
	svc := NewSupplierService(store)

	suppliers, err := svc.ListSuppliers(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Beta Goods", suppliers[0].Name)
}

func TestDeleteSupplier(t *testing.T) {
	store := &fakeSupplierStore{}
	svc := NewSupplierService(store)

	require.NoError(t, svc.DeleteSupplier(context.Background(), "user-1", 4))
	assert.Equal(t, []int{4}, store.deletedIDs)
}
