// Package memory holds warehouses, stock and the digital catalog in process.
// It backs the offline CLI and tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dukerupert/consign/internal/domain"
)

type stockKey struct {
	supplier string
	sku      string
}

// Store implements domain.WarehouseDirectory, domain.InventoryLookup and
// domain.DigitalGoodsLookup over maps. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	shops     map[uuid.UUID][]domain.Warehouse
	inventory map[stockKey]domain.InventoryRecord
	digital   map[string]bool
}

var (
	_ domain.WarehouseDirectory = (*Store)(nil)
	_ domain.InventoryLookup    = (*Store)(nil)
	_ domain.DigitalGoodsLookup = (*Store)(nil)
)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		shops:     make(map[uuid.UUID][]domain.Warehouse),
		inventory: make(map[stockKey]domain.InventoryRecord),
		digital:   make(map[string]bool),
	}
}

// AddWarehouse appends wh to the shop's warehouses. Rank follows call order.
func (s *Store) AddWarehouse(shopID uuid.UUID, wh domain.Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[shopID] = append(s.shops[shopID], wh)
}

// PutInventory stores or replaces the record for (record.Supplier, record.SKU).
func (s *Store) PutInventory(record domain.InventoryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory[stockKey{record.Supplier, record.SKU}] = record
}

// SetDigital marks sku as belonging to a digital product.
func (s *Store) SetDigital(sku string, digital bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.digital[sku] = digital
}

// ListForShop returns a copy of the shop's warehouses in rank order.
// An unknown shop has no warehouses.
func (s *Store) ListForShop(ctx context.Context, shopID uuid.UUID) ([]domain.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	warehouses := s.shops[shopID]
	out := make([]domain.Warehouse, len(warehouses))
	copy(out, warehouses)
	return out, nil
}

// Find returns a copy of the stored record, or nil.
func (s *Store) Find(ctx context.Context, supplierCode, sku string) (*domain.InventoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.inventory[stockKey{supplierCode, sku}]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// IsDigital reports whether sku was marked digital.
func (s *Store) IsDigital(ctx context.Context, sku string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.digital[sku], nil
}
