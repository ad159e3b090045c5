package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getProductSkuDigital = `-- name: GetProductSkuDigital :one
SELECT digital
FROM product_skus
WHERE sku = $1
`

func (q *Queries) GetProductSkuDigital(ctx context.Context, sku string) (bool, error) {
	row := q.db.QueryRow(ctx, getProductSkuDigital, sku)
	var digital bool
	err := row.Scan(&digital)
	return digital, err
}

const getSkuWarehouse = `-- name: GetSkuWarehouse :one
SELECT warehouse_code, sku, quantity, reserved, availability, disabled,
       available_from, available_to, release_date, updated_at
FROM sku_warehouse
WHERE warehouse_code = $1 AND sku = $2
`

type GetSkuWarehouseParams struct {
	WarehouseCode string
	Sku           string
}

func (q *Queries) GetSkuWarehouse(ctx context.Context, arg GetSkuWarehouseParams) (SkuWarehouse, error) {
	row := q.db.QueryRow(ctx, getSkuWarehouse, arg.WarehouseCode, arg.Sku)
	var i SkuWarehouse
	err := row.Scan(
		&i.WarehouseCode,
		&i.Sku,
		&i.Quantity,
		&i.Reserved,
		&i.Availability,
		&i.Disabled,
		&i.AvailableFrom,
		&i.AvailableTo,
		&i.ReleaseDate,
		&i.UpdatedAt,
	)
	return i, err
}

const listShopWarehouses = `-- name: ListShopWarehouses :many
SELECT w.code, w.name, w.multiple_shipping_supported
FROM shop_warehouses sw
JOIN warehouses w ON w.code = sw.warehouse_code
WHERE sw.shop_id = $1
ORDER BY sw.rank, w.code
`

type ListShopWarehousesRow struct {
	Code                      string
	Name                      string
	MultipleShippingSupported bool
}

func (q *Queries) ListShopWarehouses(ctx context.Context, shopID pgtype.UUID) ([]ListShopWarehousesRow, error) {
	rows, err := q.db.Query(ctx, listShopWarehouses, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListShopWarehousesRow
	for rows.Next() {
		var i ListShopWarehousesRow
		if err := rows.Scan(&i.Code, &i.Name, &i.MultipleShippingSupported); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
