// Mock layout follows mockery; `go generate ./...` regenerates it from
// .mockery.yaml.

package mocks

import (
	context "context"
	time "time"

	models "mf-api/internal/models"

	mock "github.com/stretchr/testify/mock"
	primitive "go.mongodb.org/mongo-driver/bson/primitive"

	repo "mf-api/internal/api/repo"
)

// RepoItf is a testify mock of repo.RepoItf.
type RepoItf struct {
	mock.Mock
}

func (_m *RepoItf) errorAt(ret mock.Arguments, i int) error {
	if ret.Get(i) == nil {
		return nil
	}
	return ret.Error(i)
}

// Ping provides a mock function with given fields: _a0
func (_m *RepoItf) Ping(_a0 context.Context) error {
	ret := _m.Called(_a0)
	return _m.errorAt(ret, 0)
}

// EnsureIndexes provides a mock function with given fields: _a0
func (_m *RepoItf) EnsureIndexes(_a0 context.Context) error {
	ret := _m.Called(_a0)
	return _m.errorAt(ret, 0)
}

// FindUserByEmail provides a mock function with given fields: ctx, email
func (_m *RepoItf) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ret := _m.Called(ctx, email)
	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// FindUserByID provides a mock function with given fields: ctx, id
func (_m *RepoItf) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// ListUsers provides a mock function with given fields: ctx
func (_m *RepoItf) ListUsers(ctx context.Context) ([]models.User, error) {
	ret := _m.Called(ctx)
	var r0 []models.User
	if rf, ok := ret.Get(0).([]models.User); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// InsertUser provides a mock function with given fields: ctx, user
func (_m *RepoItf) InsertUser(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)
	return _m.errorAt(ret, 0)
}

// UpdateUser provides a mock function with given fields: ctx, id, update, now
func (_m *RepoItf) UpdateUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate, now time.Time) (*models.User, error) {
	ret := _m.Called(ctx, id, update, now)
	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// DeleteUser provides a mock function with given fields: ctx, id
func (_m *RepoItf) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return _m.errorAt(ret, 0)
}

// LatestFundDate provides a mock function with given fields: ctx
func (_m *RepoItf) LatestFundDate(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), _m.errorAt(ret, 1)
}

// CountFundHoldings provides a mock function with given fields: ctx, date
func (_m *RepoItf) CountFundHoldings(ctx context.Context, date string) (int64, error) {
	ret := _m.Called(ctx, date)
	return ret.Get(0).(int64), _m.errorAt(ret, 1)
}

// ListFundSummaries provides a mock function with given fields: ctx, date, page
func (_m *RepoItf) ListFundSummaries(ctx context.Context, date string, page repo.PageParams) ([]models.FundSummary, error) {
	ret := _m.Called(ctx, date, page)
	var r0 []models.FundSummary
	if rf, ok := ret.Get(0).([]models.FundSummary); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// FindFundHoldings provides a mock function with given fields: ctx, fundID, date
func (_m *RepoItf) FindFundHoldings(ctx context.Context, fundID string, date string) ([]models.FundHolding, error) {
	ret := _m.Called(ctx, fundID, date)
	var r0 []models.FundHolding
	if rf, ok := ret.Get(0).([]models.FundHolding); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// FindFundHoldingsByIDs provides a mock function with given fields: ctx, fundIDs
func (_m *RepoItf) FindFundHoldingsByIDs(ctx context.Context, fundIDs []string) ([]models.FundHolding, error) {
	ret := _m.Called(ctx, fundIDs)
	var r0 []models.FundHolding
	if rf, ok := ret.Get(0).([]models.FundHolding); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// CountStocks provides a mock function with given fields: ctx, search
func (_m *RepoItf) CountStocks(ctx context.Context, search string) (int64, error) {
	ret := _m.Called(ctx, search)
	return ret.Get(0).(int64), _m.errorAt(ret, 1)
}

// ListStocks provides a mock function with given fields: ctx, search, page
func (_m *RepoItf) ListStocks(ctx context.Context, search string, page repo.PageParams) ([]models.Stock, error) {
	ret := _m.Called(ctx, search, page)
	var r0 []models.Stock
	if rf, ok := ret.Get(0).([]models.Stock); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// FindStockByID provides a mock function with given fields: ctx, id
func (_m *RepoItf) FindStockByID(ctx context.Context, id primitive.ObjectID) (*models.Stock, error) {
	ret := _m.Called(ctx, id)
	var r0 *models.Stock
	if rf, ok := ret.Get(0).(*models.Stock); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// FindStocksByIDs provides a mock function with given fields: ctx, ids
func (_m *RepoItf) FindStocksByIDs(ctx context.Context, ids []string) ([]models.Stock, error) {
	ret := _m.Called(ctx, ids)
	var r0 []models.Stock
	if rf, ok := ret.Get(0).([]models.Stock); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// FindStockTimeline provides a mock function with given fields: ctx, stockID
func (_m *RepoItf) FindStockTimeline(ctx context.Context, stockID string) (*models.StockTimeline, error) {
	ret := _m.Called(ctx, stockID)
	var r0 *models.StockTimeline
	if rf, ok := ret.Get(0).(*models.StockTimeline); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// FindFavorites provides a mock function with given fields: ctx, userID, itemType
func (_m *RepoItf) FindFavorites(ctx context.Context, userID string, itemType string) ([]models.Favorite, error) {
	ret := _m.Called(ctx, userID, itemType)
	var r0 []models.Favorite
	if rf, ok := ret.Get(0).([]models.Favorite); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// FindFavorite provides a mock function with given fields: ctx, key
func (_m *RepoItf) FindFavorite(ctx context.Context, key models.FavoriteKey) (*models.Favorite, error) {
	ret := _m.Called(ctx, key)
	var r0 *models.Favorite
	if rf, ok := ret.Get(0).(*models.Favorite); ok {
		r0 = rf
	}
	return r0, _m.errorAt(ret, 1)
}

// InsertFavorite provides a mock function with given fields: ctx, fav
func (_m *RepoItf) InsertFavorite(ctx context.Context, fav *models.Favorite) error {
	ret := _m.Called(ctx, fav)
	return _m.errorAt(ret, 0)
}

// DeleteFavorite provides a mock function with given fields: ctx, key
func (_m *RepoItf) DeleteFavorite(ctx context.Context, key models.FavoriteKey) error {
	ret := _m.Called(ctx, key)
	return _m.errorAt(ret, 0)
}

// NewRepoItf creates a new instance of RepoItf. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRepoItf(t interface {
	mock.TestingT
	Cleanup(func())
}) *RepoItf {
	mock := &RepoItf{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
