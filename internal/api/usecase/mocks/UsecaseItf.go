// Mock layout follows mockery; `go generate ./...` regenerates it from
// .mockery.yaml.

package mocks

import (
	context "context"

	dto "mf-api/internal/api/dto"
	models "mf-api/internal/models"

	mock "github.com/stretchr/testify/mock"
)

// UsecaseItf is a testify mock of usecase.UsecaseItf.
type UsecaseItf struct {
	mock.Mock
}

func (_m *UsecaseItf) errorAt(ret mock.Arguments, i int) error {
	if ret.Get(i) == nil {
		return nil
	}
	return ret.Error(i)
}

// Ping provides a mock function with given fields: ctx
func (_m *UsecaseItf) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return _m.errorAt(ret, 0)
}

// CreateUser provides a mock function with given fields: ctx, req
func (_m *UsecaseItf) CreateUser(ctx context.Context, req dto.CreateUserReq) (*models.User, bool, error) {
	ret := _m.Called(ctx, req)
	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}
	return r0, ret.Bool(1), _m.errorAt(ret, 2)
}

// GetUserByEmail provides a mock function with given fields: ctx, email
func (_m *UsecaseItf) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ret := _m.Called(ctx, email)
	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// GetUserByID provides a mock function with given fields: ctx, id
func (_m *UsecaseItf) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// ListUsers provides a mock function with given fields: ctx
func (_m *UsecaseItf) ListUsers(ctx context.Context) ([]models.User, error) {
	ret := _m.Called(ctx)
	var r0 []models.User
	if rf, ok := ret.Get(0).([]models.User); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// UpdateUser provides a mock function with given fields: ctx, id, req
func (_m *UsecaseItf) UpdateUser(ctx context.Context, id string, req dto.UpdateUserReq) (*models.User, error) {
	ret := _m.Called(ctx, id, req)
	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// DeleteUser provides a mock function with given fields: ctx, id
func (_m *UsecaseItf) DeleteUser(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return _m.errorAt(ret, 0)
}

// ListFunds provides a mock function with given fields: ctx, q
func (_m *UsecaseItf) ListFunds(ctx context.Context, q dto.FundListQuery) ([]models.FundSummary, int64, error) {
	ret := _m.Called(ctx, q)
	var r0 []models.FundSummary
	if rf, ok := ret.Get(0).([]models.FundSummary); ok {
		r0 = rf
	}
	var r1 int64
	if rf, ok := ret.Get(1).(int64); ok {
		r1 = rf
	}
	return r0, r1, _m.errorAt(ret, 2)
}

// GetFundInfo provides a mock function with given fields: ctx, fundID, date
func (_m *UsecaseItf) GetFundInfo(ctx context.Context, fundID string, date string) (*models.FundInfo, error) {
	ret := _m.Called(ctx, fundID, date)
	var r0 *models.FundInfo
	if rf, ok := ret.Get(0).(*models.FundInfo); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// RefreshLatestFundDate provides a mock function with given fields: ctx
func (_m *UsecaseItf) RefreshLatestFundDate(ctx context.Context) error {
	ret := _m.Called(ctx)
	return _m.errorAt(ret, 0)
}

// ListStocks provides a mock function with given fields: ctx, q
func (_m *UsecaseItf) ListStocks(ctx context.Context, q dto.StockListQuery) ([]models.Stock, int64, error) {
	ret := _m.Called(ctx, q)
	var r0 []models.Stock
	if rf, ok := ret.Get(0).([]models.Stock); ok {
		r0 = rf
	}
	var r1 int64
	if rf, ok := ret.Get(1).(int64); ok {
		r1 = rf
	}
	return r0, r1, _m.errorAt(ret, 2)
}

// GetStockInfo provides a mock function with given fields: ctx, stockID
func (_m *UsecaseItf) GetStockInfo(ctx context.Context, stockID string) (*models.Stock, error) {
	ret := _m.Called(ctx, stockID)
	var r0 *models.Stock
	if rf, ok := ret.Get(0).(*models.Stock); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// GetStockTimeline provides a mock function with given fields: ctx, stockID
func (_m *UsecaseItf) GetStockTimeline(ctx context.Context, stockID string) (*models.StockTimeline, error) {
	ret := _m.Called(ctx, stockID)
	var r0 *models.StockTimeline
	if rf, ok := ret.Get(0).(*models.StockTimeline); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// GetFavorites provides a mock function with given fields: ctx, userID, itemType
func (_m *UsecaseItf) GetFavorites(ctx context.Context, userID string, itemType string) ([]models.Favorite, error) {
	ret := _m.Called(ctx, userID, itemType)
	var r0 []models.Favorite
	if rf, ok := ret.Get(0).([]models.Favorite); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// AddFavorite provides a mock function with given fields: ctx, req
func (_m *UsecaseItf) AddFavorite(ctx context.Context, req dto.AddFavoriteReq) (*models.Favorite, bool, error) {
	ret := _m.Called(ctx, req)
	var r0 *models.Favorite
	if rf, ok := ret.Get(0).(*models.Favorite); ok {
		r0 = rf
	}
	return r0, ret.Bool(1), _m.errorAt(ret, 2)
}

// RemoveFavorite provides a mock function with given fields: ctx, key
func (_m *UsecaseItf) RemoveFavorite(ctx context.Context, key models.FavoriteKey) error {
	ret := _m.Called(ctx, key)
	return _m.errorAt(ret, 0)
}

// GetFavoriteStocks provides a mock function with given fields: ctx, userID
func (_m *UsecaseItf) GetFavoriteStocks(ctx context.Context, userID string) ([]models.Stock, bool, error) {
	ret := _m.Called(ctx, userID)
	var r0 []models.Stock
	if rf, ok := ret.Get(0).([]models.Stock); ok {
		r0 = rf
	}
	return r0, ret.Bool(1), _m.errorAt(ret, 2)
}

// GetFavoriteFunds provides a mock function with given fields: ctx, userID
func (_m *UsecaseItf) GetFavoriteFunds(ctx context.Context, userID string) ([]models.FundHolding, bool, error) {
	ret := _m.Called(ctx, userID)
	var r0 []models.FundHolding
	if rf, ok := ret.Get(0).([]models.FundHolding); ok {
		r0 = rf
	}
	return r0, ret.Bool(1), _m.errorAt(ret, 2)
}

// NewUsecaseItf creates a new instance of UsecaseItf. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUsecaseItf(t interface {
	mock.TestingT
	Cleanup(func())
}) *UsecaseItf {
	mock := &UsecaseItf{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
