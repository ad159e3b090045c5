package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductSku struct {
	Sku     string
	Digital bool
}

type ShopWarehouse struct {
	ShopID        pgtype.UUID
	WarehouseCode string
	Rank          int32
}

type SkuWarehouse struct {
	WarehouseCode string
	Sku           string
	Quantity      pgtype.Numeric
	Reserved      pgtype.Numeric
	Availability  int32
	Disabled      bool
	AvailableFrom pgtype.Timestamptz
	AvailableTo   pgtype.Timestamptz
	ReleaseDate   pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Warehouse struct {
	Code                      string
	Name                      string
	MultipleShippingSupported bool
	CreatedAt                 pgtype.Timestamptz
}
