package postgres

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/consign/internal/domain"
	"github.com/dukerupert/consign/internal/repository"
)

func TestWarehouseDirectory_ListForShop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	shopID := uuid.New()

	mockRepo.EXPECT().
		ListShopWarehouses(gomock.Any(), pgtype.UUID{Bytes: shopID, Valid: true}).
		Return([]repository.ListShopWarehousesRow{
			{Code: "WH2", Name: "North", MultipleShippingSupported: true},
			{Code: "WH1", Name: "South"},
		}, nil)

	got, err := NewWarehouseDirectory(mockRepo).ListForShop(context.Background(), shopID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Warehouse{
		{Code: "WH2", Name: "North", MultipleShippingSupported: true},
		{Code: "WH1", Name: "South"},
	}, got)
}

func TestWarehouseDirectory_ListForShop_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockQuerier(ctrl)
	boom := errors.New("connection reset")

	mockRepo.EXPECT().ListShopWarehouses(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := NewWarehouseDirectory(mockRepo).ListForShop(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
	assert.Equal(t, "warehouse.list_for_shop", domain.ErrorOp(err))
}

func TestInventoryLookup_Find(t *testing.T) {
	release := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	params := repository.GetSkuWarehouseParams{WarehouseCode: "WH1", Sku: "X1"}

	tests := []struct {
		name     string
		row      repository.SkuWarehouse
		err      error
		want     *domain.InventoryRecord
		wantCode string
	}{
		{
			name: "tracked",
			row: repository.SkuWarehouse{
				WarehouseCode: "WH1",
				Sku:           "X1",
				Quantity:      pgtype.Numeric{Int: big.NewInt(1250), Exp: -2, Valid: true},
				Reserved:      pgtype.Numeric{Int: big.NewInt(2), Valid: true},
				Availability:  4,
				ReleaseDate:   pgtype.Timestamptz{Time: release, Valid: true},
			},
		},
		{
			name: "not tracked",
			err:  pgx.ErrNoRows,
		},
		{
			name:     "query failure",
			err:      errors.New("timeout"),
			wantCode: domain.EINTERNAL,
		},
		{
			name: "corrupt availability",
			row: repository.SkuWarehouse{
				WarehouseCode: "WH1",
				Sku:           "X1",
				Availability:  3,
			},
			wantCode: domain.EINTERNAL,
		},
		{
			name: "nan quantity",
			row: repository.SkuWarehouse{
				WarehouseCode: "WH1",
				Sku:           "X1",
				Quantity:      pgtype.Numeric{NaN: true, Valid: true},
				Availability:  1,
			},
			wantCode: domain.EINTERNAL,
		},
		{
			name: "infinite reserved",
			row: repository.SkuWarehouse{
				WarehouseCode: "WH1",
				Sku:           "X1",
				Quantity:      pgtype.Numeric{Int: big.NewInt(5), Valid: true},
				Reserved:      pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true},
				Availability:  1,
			},
			wantCode: domain.EINTERNAL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)
			mockRepo.EXPECT().GetSkuWarehouse(gomock.Any(), params).Return(tt.row, tt.err)

			got, err := NewInventoryLookup(mockRepo).Find(context.Background(), "WH1", "X1")
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
				return
			}
			require.NoError(t, err)

			if tt.err != nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, "12.5", got.Quantity.String())
			assert.Equal(t, "10.5", got.AvailableToSell().String())
			assert.Equal(t, domain.AvailabilityBackorder, got.Mode)
			require.NotNil(t, got.ReleaseDate)
			assert.True(t, release.Equal(*got.ReleaseDate))
			assert.Nil(t, got.AvailableFrom)
			assert.Nil(t, got.AvailableTo)
		})
	}
}

func TestCatalog_IsDigital(t *testing.T) {
	tests := []struct {
		name    string
		digital bool
		err     error
		want    bool
		wantErr bool
	}{
		{name: "digital", digital: true, want: true},
		{name: "physical", digital: false, want: false},
		{name: "unknown sku", err: pgx.ErrNoRows, want: false},
		{name: "query failure", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockQuerier(ctrl)
			mockRepo.EXPECT().GetProductSkuDigital(gomock.Any(), "EBOOK").Return(tt.digital, tt.err)

			got, err := NewCatalog(mockRepo).IsDigital(context.Background(), "EBOOK")
			if tt.wantErr {
				assert.True(t, domain.IsCode(err, domain.EINTERNAL))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
