package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dukerupert/consign/internal/domain"
	"github.com/dukerupert/consign/internal/repository"
)

// WarehouseDirectory implements domain.WarehouseDirectory using PostgreSQL.
type WarehouseDirectory struct {
	repo repository.Querier
}

// Compile-time check that WarehouseDirectory implements domain.WarehouseDirectory.
var _ domain.WarehouseDirectory = (*WarehouseDirectory)(nil)

// NewWarehouseDirectory creates a new PostgreSQL-backed warehouse directory.
func NewWarehouseDirectory(repo repository.Querier) *WarehouseDirectory {
	return &WarehouseDirectory{repo: repo}
}

// ListForShop returns the shop's warehouses ordered by rank.
func (d *WarehouseDirectory) ListForShop(ctx context.Context, shopID uuid.UUID) ([]domain.Warehouse, error) {
	rows, err := d.repo.ListShopWarehouses(ctx, pgUUID(shopID))
	if err != nil {
		return nil, domain.Internal(err, "warehouse.list_for_shop", "failed to list shop warehouses")
	}

	warehouses := make([]domain.Warehouse, len(rows))
	for i, row := range rows {
		warehouses[i] = domain.Warehouse{
			Code:                      row.Code,
			Name:                      row.Name,
			MultipleShippingSupported: row.MultipleShippingSupported,
		}
	}
	return warehouses, nil
}

// InventoryLookup implements domain.InventoryLookup using PostgreSQL.
type InventoryLookup struct {
	repo repository.Querier
}

// Compile-time check that InventoryLookup implements domain.InventoryLookup.
var _ domain.InventoryLookup = (*InventoryLookup)(nil)

// NewInventoryLookup creates a new PostgreSQL-backed inventory lookup.
func NewInventoryLookup(repo repository.Querier) *InventoryLookup {
	return &InventoryLookup{repo: repo}
}

// Find returns the stock record for sku at supplierCode, or nil when the SKU
// is not tracked there.
func (l *InventoryLookup) Find(ctx context.Context, supplierCode, sku string) (*domain.InventoryRecord, error) {
	const op = "inventory.find"

	row, err := l.repo.GetSkuWarehouse(ctx, repository.GetSkuWarehouseParams{
		WarehouseCode: supplierCode,
		Sku:           sku,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Internal(err, op, "failed to get sku inventory")
	}

	return mapSkuWarehouseToDomain(row)
}

// mapSkuWarehouseToDomain converts a repository SkuWarehouse to a domain InventoryRecord.
func mapSkuWarehouseToDomain(row repository.SkuWarehouse) (*domain.InventoryRecord, error) {
	const op = "inventory.map"

	quantity, err := decimalFromNumeric(row.Quantity)
	if err != nil {
		return nil, domain.Internal(err, op, "invalid quantity")
	}
	reserved, err := decimalFromNumeric(row.Reserved)
	if err != nil {
		return nil, domain.Internal(err, op, "invalid reserved quantity")
	}

	mode := domain.AvailabilityMode(row.Availability)
	if mode.String() == "unknown" {
		return nil, domain.Errorf(domain.EINTERNAL, op, "unknown availability %d for %s at %s", row.Availability, row.Sku, row.WarehouseCode)
	}

	return &domain.InventoryRecord{
		Supplier:      row.WarehouseCode,
		SKU:           row.Sku,
		Quantity:      quantity,
		Reserved:      reserved,
		Mode:          mode,
		Disabled:      row.Disabled,
		AvailableFrom: timeFromTimestamptz(row.AvailableFrom),
		AvailableTo:   timeFromTimestamptz(row.AvailableTo),
		ReleaseDate:   timeFromTimestamptz(row.ReleaseDate),
	}, nil
}

// Catalog implements domain.DigitalGoodsLookup using PostgreSQL.
type Catalog struct {
	repo repository.Querier
}

// Compile-time check that Catalog implements domain.DigitalGoodsLookup.
var _ domain.DigitalGoodsLookup = (*Catalog)(nil)

// NewCatalog creates a new PostgreSQL-backed digital goods lookup.
func NewCatalog(repo repository.Querier) *Catalog {
	return &Catalog{repo: repo}
}

// IsDigital reports whether sku belongs to a digital product. Unknown SKUs are physical.
func (c *Catalog) IsDigital(ctx context.Context, sku string) (bool, error) {
	digital, err := c.repo.GetProductSkuDigital(ctx, sku)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, domain.Internal(err, "catalog.is_digital", "failed to get product sku")
	}
	return digital, nil
}
