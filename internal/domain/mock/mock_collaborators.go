// Package mock holds gomock doubles for the domain collaborators, laid out
// as mockgen emits them for the go:generate line in collaborators.go.
package mock

import (
	context "context"
	reflect "reflect"

	domain "github.com/dukerupert/consign/internal/domain"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockWarehouseDirectory is a mock of WarehouseDirectory interface.
type MockWarehouseDirectory struct {
	ctrl     *gomock.Controller
	recorder *MockWarehouseDirectoryMockRecorder
	isgomock struct{}
}

// MockWarehouseDirectoryMockRecorder is the mock recorder for MockWarehouseDirectory.
type MockWarehouseDirectoryMockRecorder struct {
	mock *MockWarehouseDirectory
}

// NewMockWarehouseDirectory creates a new mock instance.
func NewMockWarehouseDirectory(ctrl *gomock.Controller) *MockWarehouseDirectory {
	mock := &MockWarehouseDirectory{ctrl: ctrl}
	mock.recorder = &MockWarehouseDirectoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWarehouseDirectory) EXPECT() *MockWarehouseDirectoryMockRecorder {
	return m.recorder
}

// ListForShop mocks base method.
func (m *MockWarehouseDirectory) ListForShop(ctx context.Context, shopID uuid.UUID) ([]domain.Warehouse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListForShop", ctx, shopID)
	ret0, _ := ret[0].([]domain.Warehouse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListForShop indicates an expected call of ListForShop.
func (mr *MockWarehouseDirectoryMockRecorder) ListForShop(ctx, shopID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListForShop", reflect.TypeOf((*MockWarehouseDirectory)(nil).ListForShop), ctx, shopID)
}

// MockInventoryLookup is a mock of InventoryLookup interface.
type MockInventoryLookup struct {
	ctrl     *gomock.Controller
	recorder *MockInventoryLookupMockRecorder
	isgomock struct{}
}

// MockInventoryLookupMockRecorder is the mock recorder for MockInventoryLookup.
type MockInventoryLookupMockRecorder struct {
	mock *MockInventoryLookup
}

// NewMockInventoryLookup creates a new mock instance.
func NewMockInventoryLookup(ctrl *gomock.Controller) *MockInventoryLookup {
	mock := &MockInventoryLookup{ctrl: ctrl}
	mock.recorder = &MockInventoryLookupMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInventoryLookup) EXPECT() *MockInventoryLookupMockRecorder {
	return m.recorder
}

// Find mocks base method.
func (m *MockInventoryLookup) Find(ctx context.Context, supplierCode, sku string) (*domain.InventoryRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Find", ctx, supplierCode, sku)
	ret0, _ := ret[0].(*domain.InventoryRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Find indicates an expected call of Find.
func (mr *MockInventoryLookupMockRecorder) Find(ctx, supplierCode, sku any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Find", reflect.TypeOf((*MockInventoryLookup)(nil).Find), ctx, supplierCode, sku)
}

// MockDigitalGoodsLookup is a mock of DigitalGoodsLookup interface.
type MockDigitalGoodsLookup struct {
	ctrl     *gomock.Controller
	recorder *MockDigitalGoodsLookupMockRecorder
	isgomock struct{}
}

// MockDigitalGoodsLookupMockRecorder is the mock recorder for MockDigitalGoodsLookup.
type MockDigitalGoodsLookupMockRecorder struct {
	mock *MockDigitalGoodsLookup
}

// NewMockDigitalGoodsLookup creates a new mock instance.
func NewMockDigitalGoodsLookup(ctrl *gomock.Controller) *MockDigitalGoodsLookup {
	mock := &MockDigitalGoodsLookup{ctrl: ctrl}
	mock.recorder = &MockDigitalGoodsLookupMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDigitalGoodsLookup) EXPECT() *MockDigitalGoodsLookupMockRecorder {
	return m.recorder
}

// IsDigital mocks base method.
func (m *MockDigitalGoodsLookup) IsDigital(ctx context.Context, sku string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsDigital", ctx, sku)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsDigital indicates an expected call of IsDigital.
func (mr *MockDigitalGoodsLookupMockRecorder) IsDigital(ctx, sku any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsDigital", reflect.TypeOf((*MockDigitalGoodsLookup)(nil).IsDigital), ctx, sku)
}
