package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	GetProductSkuDigital(ctx context.Context, sku string) (bool, error)
	GetSkuWarehouse(ctx context.Context, arg GetSkuWarehouseParams) (SkuWarehouse, error)
	ListShopWarehouses(ctx context.Context, shopID pgtype.UUID) ([]ListShopWarehousesRow, error)
}

var _ Querier = (*Queries)(nil)
