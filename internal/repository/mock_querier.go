// MockQuerier follows mockgen's output for Querier
// (mockgen -destination=mock_querier.go -package=repository . Querier).

package repository

import (
	context "context"
	reflect "reflect"

	pgtype "github.com/jackc/pgx/v5/pgtype"
	gomock "go.uber.org/mock/gomock"
)

// MockQuerier is a mock of Querier interface.
type MockQuerier struct {
	ctrl     *gomock.Controller
	recorder *MockQuerierMockRecorder
	isgomock struct{}
}

// MockQuerierMockRecorder is the mock recorder for MockQuerier.
type MockQuerierMockRecorder struct {
	mock *MockQuerier
}

// NewMockQuerier creates a new mock instance.
func NewMockQuerier(ctrl *gomock.Controller) *MockQuerier {
	mock := &MockQuerier{ctrl: ctrl}
	mock.recorder = &MockQuerierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQuerier) EXPECT() *MockQuerierMockRecorder {
	return m.recorder
}

// GetProductSkuDigital mocks base method.
func (m *MockQuerier) GetProductSkuDigital(ctx context.Context, sku string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProductSkuDigital", ctx, sku)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProductSkuDigital indicates an expected call of GetProductSkuDigital.
func (mr *MockQuerierMockRecorder) GetProductSkuDigital(ctx, sku any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProductSkuDigital", reflect.TypeOf((*MockQuerier)(nil).GetProductSkuDigital), ctx, sku)
}

// GetSkuWarehouse mocks base method.
func (m *MockQuerier) GetSkuWarehouse(ctx context.Context, arg GetSkuWarehouseParams) (SkuWarehouse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSkuWarehouse", ctx, arg)
	ret0, _ := ret[0].(SkuWarehouse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSkuWarehouse indicates an expected call of GetSkuWarehouse.
func (mr *MockQuerierMockRecorder) GetSkuWarehouse(ctx, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSkuWarehouse", reflect.TypeOf((*MockQuerier)(nil).GetSkuWarehouse), ctx, arg)
}

// ListShopWarehouses mocks base method.
func (m *MockQuerier) ListShopWarehouses(ctx context.Context, shopID pgtype.UUID) ([]ListShopWarehousesRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListShopWarehouses", ctx, shopID)
	ret0, _ := ret[0].([]ListShopWarehousesRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListShopWarehouses indicates an expected call of ListShopWarehouses.
func (mr *MockQuerierMockRecorder) ListShopWarehouses(ctx, shopID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListShopWarehouses", reflect.TypeOf((*MockQuerier)(nil).ListShopWarehouses), ctx, shopID)
}
