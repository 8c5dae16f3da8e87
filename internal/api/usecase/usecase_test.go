package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mf-api/internal/api/constant"
	"mf-api/internal/api/dto"
	"mf-api/internal/api/repo"
	"mf-api/internal/api/repo/mocks"
	"mf-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	clockTime = time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC)
	stampTime = time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.UTC)
	errRepo   = errors.New("api usecase error")
)

func fixedClock() time.Time { return clockTime }

type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, bson.Unmarshal(data, dest)
}

func (c *memCache) Set(_ context.Context, key string, value any) error {
	data, err := bson.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

type recordingPublisher struct {
	events []models.FavoriteEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event models.FavoriteEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func TestCreateUser(t *testing.T) {
	req := dto.CreateUserReq{Name: "Asha", Email: "asha@example.com"}
	existing := &models.User{Id: primitive.NewObjectID(), Name: "Asha", Email: "asha@example.com"}

	testCases := []struct {
		name            string
		repoSetup       func(rp *mocks.RepoItf)
		expectedCreated bool
		expectedErr     error
		check           func(t *testing.T, user *models.User)
	}{
		{
			name: "returns existing user",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindUserByEmail", mock.Anything, "asha@example.com").Return(existing, nil)
			},
			expectedCreated: false,
			check: func(t *testing.T, user *models.User) {
				assert.Equal(t, existing, user)
			},
		},
		{
			name: "creates user with timestamps",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindUserByEmail", mock.Anything, "asha@example.com").Return(nil, repo.ErrNotFound)
				rp.On("InsertUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Email == "asha@example.com" && u.CreatedAt.Equal(stampTime) && u.UpdatedAt.Equal(stampTime)
				})).Return(nil)
			},
			expectedCreated: true,
			check: func(t *testing.T, user *models.User) {
				assert.Equal(t, "Asha", user.Name)
				assert.Equal(t, stampTime, user.CreatedAt)
			},
		},
		{
			name: "lookup error",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindUserByEmail", mock.Anything, "asha@example.com").Return(nil, errRepo)
			},
			expectedErr: errRepo,
		},
		{
			name: "insert error",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindUserByEmail", mock.Anything, "asha@example.com").Return(nil, repo.ErrNotFound)
				rp.On("InsertUser", mock.Anything, mock.Anything).Return(errRepo)
			},
			expectedErr: errRepo,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			rp := mocks.NewRepoItf(t)
			tt.repoSetup(rp)
			uc := NewUsecase(rp, WithClock(fixedClock))

			//when
			user, created, err := uc.CreateUser(context.Background(), req)

			//then
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCreated, created)
			tt.check(t, user)
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	user := &models.User{Email: "asha@example.com"}

	testCases := []struct {
		name           string
		email          string
		repoSetup      func(rp *mocks.RepoItf)
		expectedOutput *models.User
		expectedErr    error
	}{
		{
			name:        "email required",
			email:       "",
			repoSetup:   func(rp *mocks.RepoItf) {},
			expectedErr: constant.ErrEmailRequired,
		},
		{
			name:  "not found",
			email: "nobody@example.com",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindUserByEmail", mock.Anything, "nobody@example.com").Return(nil, repo.ErrNotFound)
			},
			expectedErr: constant.ErrUserNotFound,
		},
		{
			name:  "found",
			email: "asha@example.com",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindUserByEmail", mock.Anything, "asha@example.com").Return(user, nil)
			},
			expectedOutput: user,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			rp := mocks.NewRepoItf(t)
			tt.repoSetup(rp)
			uc := NewUsecase(rp)

			//when
			output, err := uc.GetUserByEmail(context.Background(), tt.email)

			//then
			assert.Equal(t, tt.expectedOutput, output)
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestUserByIDOperations(t *testing.T) {
	oid := primitive.NewObjectID()
	name := "Ravi"
	updated := &models.User{Id: oid, Name: name}

	t.Run("invalid id is rejected before the repo", func(t *testing.T) {
		uc := NewUsecase(mocks.NewRepoItf(t))

		_, err := uc.GetUserByID(context.Background(), "nope")
		assert.Equal(t, constant.ErrInvalidUserID, err)

		_, err = uc.UpdateUser(context.Background(), "nope", dto.UpdateUserReq{Name: &name})
		assert.Equal(t, constant.ErrInvalidUserID, err)

		err = uc.DeleteUser(context.Background(), "nope")
		assert.Equal(t, constant.ErrInvalidUserID, err)
	})

	t.Run("get maps not found", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("FindUserByID", mock.Anything, oid).Return(nil, repo.ErrNotFound)
		uc := NewUsecase(rp)

		_, err := uc.GetUserByID(context.Background(), oid.Hex())
		assert.Equal(t, constant.ErrUserNotFound, err)
	})

	t.Run("update passes fields and timestamp", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("UpdateUser", mock.Anything, oid, models.UserUpdate{Name: &name}, stampTime).Return(updated, nil)
		uc := NewUsecase(rp, WithClock(fixedClock))

		output, err := uc.UpdateUser(context.Background(), oid.Hex(), dto.UpdateUserReq{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, updated, output)
	})

	t.Run("update maps not found", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("UpdateUser", mock.Anything, oid, mock.Anything, mock.Anything).Return(nil, repo.ErrNotFound)
		uc := NewUsecase(rp)

		_, err := uc.UpdateUser(context.Background(), oid.Hex(), dto.UpdateUserReq{})
		assert.Equal(t, constant.ErrUserNotFound, err)
	})

	t.Run("delete", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("DeleteUser", mock.Anything, oid).Return(nil).Once()
		rp.On("DeleteUser", mock.Anything, oid).Return(repo.ErrNotFound).Once()
		uc := NewUsecase(rp)

		assert.NoError(t, uc.DeleteUser(context.Background(), oid.Hex()))
		assert.Equal(t, constant.ErrUserNotFound, uc.DeleteUser(context.Background(), oid.Hex()))
	})
}

func TestListUsers(t *testing.T) {
	rp := mocks.NewRepoItf(t)
	rp.On("ListUsers", mock.Anything).Return(nil, nil)
	uc := NewUsecase(rp)

	users, err := uc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListFunds(t *testing.T) {
	summaries := []models.FundSummary{{Id: "F1", Name: "Alpha", HoldingCount: 10}}
	defaultQuery := dto.FundListQuery{Skip: 0, Limit: 50, SortBy: "holding_count", Order: "desc"}
	page := repo.PageParams{Skip: 0, Limit: 50, SortBy: "holding_count", Desc: true}

	testCases := []struct {
		name          string
		query         dto.FundListQuery
		cacheSetup    func(c *memCache)
		repoSetup     func(rp *mocks.RepoItf)
		expectedOut   []models.FundSummary
		expectedCount int64
		expectedErr   error
	}{
		{
			name: "explicit date",
			query: dto.FundListQuery{
				Skip: 5, Limit: 10, SortBy: "name", Order: "asc", Date: "2024-03-31",
			},
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("CountFundHoldings", mock.Anything, "2024-03-31").Return(int64(42), nil)
				rp.On("ListFundSummaries", mock.Anything, "2024-03-31",
					repo.PageParams{Skip: 5, Limit: 10, SortBy: "name", Desc: false}).Return(summaries, nil)
			},
			expectedOut:   summaries,
			expectedCount: 42,
		},
		{
			name:  "latest date from repo",
			query: defaultQuery,
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("LatestFundDate", mock.Anything).Return("2024-04-30", nil)
				rp.On("CountFundHoldings", mock.Anything, "2024-04-30").Return(int64(3), nil)
				rp.On("ListFundSummaries", mock.Anything, "2024-04-30", page).Return(summaries, nil)
			},
			expectedOut:   summaries,
			expectedCount: 3,
		},
		{
			name:  "latest date from cache",
			query: defaultQuery,
			cacheSetup: func(c *memCache) {
				_ = c.Set(context.Background(), latestFundDateKey, fundDateEntry{Date: "2024-02-29"})
			},
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("CountFundHoldings", mock.Anything, "2024-02-29").Return(int64(1), nil)
				rp.On("ListFundSummaries", mock.Anything, "2024-02-29", page).Return(nil, nil)
			},
			expectedOut:   []models.FundSummary{},
			expectedCount: 1,
		},
		{
			name:  "no holdings at all",
			query: defaultQuery,
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("LatestFundDate", mock.Anything).Return("", repo.ErrNotFound)
			},
			expectedErr: constant.ErrNoFundRecords,
		},
		{
			name:  "count error",
			query: defaultQuery,
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("LatestFundDate", mock.Anything).Return("2024-04-30", nil)
				rp.On("CountFundHoldings", mock.Anything, "2024-04-30").Return(int64(0), errRepo)
			},
			expectedErr: errRepo,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			rp := mocks.NewRepoItf(t)
			tt.repoSetup(rp)
			cache := newMemCache()
			if tt.cacheSetup != nil {
				tt.cacheSetup(cache)
			}
			uc := NewUsecase(rp, WithCache(cache))

			//when
			out, count, err := uc.ListFunds(context.Background(), tt.query)

			//then
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOut, out)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

func TestListFundsCachesLatestDate(t *testing.T) {
	rp := mocks.NewRepoItf(t)
	rp.On("LatestFundDate", mock.Anything).Return("2024-04-30", nil).Once()
	rp.On("CountFundHoldings", mock.Anything, "2024-04-30").Return(int64(0), nil)
	rp.On("ListFundSummaries", mock.Anything, "2024-04-30", mock.Anything).Return(nil, nil)
	uc := NewUsecase(rp, WithCache(newMemCache()))

	for i := 0; i < 2; i++ {
		_, _, err := uc.ListFunds(context.Background(), dto.FundListQuery{Limit: 50, SortBy: "name", Order: "asc"})
		require.NoError(t, err)
	}
}

func TestListFundsIgnoresCacheFailure(t *testing.T) {
	rp := mocks.NewRepoItf(t)
	rp.On("LatestFundDate", mock.Anything).Return("2024-04-30", nil)
	rp.On("CountFundHoldings", mock.Anything, "2024-04-30").Return(int64(0), nil)
	rp.On("ListFundSummaries", mock.Anything, "2024-04-30", mock.Anything).Return(nil, nil)
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	uc := NewUsecase(rp, WithCache(cache))

	_, _, err := uc.ListFunds(context.Background(), dto.FundListQuery{Limit: 50, SortBy: "name", Order: "asc"})

	assert.NoError(t, err)
}

func TestRefreshLatestFundDate(t *testing.T) {
	t.Run("stores latest date", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("LatestFundDate", mock.Anything).Return("2024-04-30", nil)
		cache := newMemCache()
		uc := NewUsecase(rp, WithCache(cache))

		require.NoError(t, uc.RefreshLatestFundDate(context.Background()))

		var entry fundDateEntry
		ok, err := cache.Get(context.Background(), latestFundDateKey, &entry)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "2024-04-30", entry.Date)
	})

	t.Run("empty collection is not an error", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("LatestFundDate", mock.Anything).Return("", repo.ErrNotFound)
		uc := NewUsecase(rp)

		assert.NoError(t, uc.RefreshLatestFundDate(context.Background()))
	})

	t.Run("repo error", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("LatestFundDate", mock.Anything).Return("", errRepo)
		uc := NewUsecase(rp)

		assert.ErrorIs(t, uc.RefreshLatestFundDate(context.Background()), errRepo)
	})
}

func TestGetFundInfo(t *testing.T) {
	older := models.FundHolding{Id: "a", UniqueID: "F1", Name: "Alpha", Date: "2024-03-31", HoldingCount: 40}
	newer := models.FundHolding{Id: "b", UniqueID: "F1", Name: "Alpha", Date: "2024-04-30", HoldingCount: 42}

	testCases := []struct {
		name        string
		fundID      string
		date        string
		repoSetup   func(rp *mocks.RepoItf)
		expectedOut *models.FundInfo
		expectedErr error
	}{
		{
			name:        "fund id required",
			repoSetup:   func(rp *mocks.RepoItf) {},
			expectedErr: constant.ErrFundIDRequired,
		},
		{
			name:   "not found",
			fundID: "F9",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFundHoldings", mock.Anything, "F9", "").Return(nil, nil)
			},
			expectedErr: constant.ErrFundNotFound,
		},
		{
			name:   "latest snapshot with history",
			fundID: "F1",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFundHoldings", mock.Anything, "F1", "").Return([]models.FundHolding{older, newer}, nil)
			},
			expectedOut: &models.FundInfo{
				FundHolding: newer,
				FundCount: []models.FundDateCount{
					{Date: "2024-03-31", HoldingCount: 40},
					{Date: "2024-04-30", HoldingCount: 42},
				},
			},
		},
		{
			name:   "restricted to date",
			fundID: "F1",
			date:   "2024-03-31",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFundHoldings", mock.Anything, "F1", "2024-03-31").Return([]models.FundHolding{older}, nil)
			},
			expectedOut: &models.FundInfo{
				FundHolding: older,
				FundCount:   []models.FundDateCount{{Date: "2024-03-31", HoldingCount: 40}},
			},
		},
		{
			name:   "repo error",
			fundID: "F1",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFundHoldings", mock.Anything, "F1", "").Return(nil, errRepo)
			},
			expectedErr: errRepo,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			rp := mocks.NewRepoItf(t)
			tt.repoSetup(rp)
			uc := NewUsecase(rp)

			//when
			out, err := uc.GetFundInfo(context.Background(), tt.fundID, tt.date)

			//then
			assert.Equal(t, tt.expectedOut, out)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestListStocks(t *testing.T) {
	stocks := []models.Stock{{Id: "s1", Name: "HDFC Bank"}}

	rp := mocks.NewRepoItf(t)
	rp.On("CountStocks", mock.Anything, "hdfc").Return(int64(1), nil)
	rp.On("ListStocks", mock.Anything, "hdfc",
		repo.PageParams{Skip: 0, Limit: 10, SortBy: "name", Desc: true}).Return(stocks, nil)
	uc := NewUsecase(rp)

	out, count, err := uc.ListStocks(context.Background(), dto.StockListQuery{
		Limit: 10, SortBy: "name", Order: "desc", Search: "  hdfc ",
	})

	require.NoError(t, err)
	assert.Equal(t, stocks, out)
	assert.Equal(t, int64(1), count)
}

func TestGetStockInfo(t *testing.T) {
	oid := primitive.NewObjectID()
	stock := &models.Stock{Id: models.DocumentID(oid.Hex()), Name: "Infosys", Extra: bson.M{"sector": "IT"}}

	testCases := []struct {
		name        string
		stockID     string
		repoSetup   func(rp *mocks.RepoItf)
		expectedOut *models.Stock
		expectedErr error
	}{
		{
			name:        "stock id required",
			repoSetup:   func(rp *mocks.RepoItf) {},
			expectedErr: constant.ErrStockIDRequired,
		},
		{
			name:        "invalid stock id",
			stockID:     "xyz",
			repoSetup:   func(rp *mocks.RepoItf) {},
			expectedErr: constant.ErrInvalidStockID,
		},
		{
			name:    "not found",
			stockID: oid.Hex(),
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindStockByID", mock.Anything, oid).Return(nil, repo.ErrNotFound)
			},
			expectedErr: constant.ErrStockNotFound,
		},
		{
			name:    "found",
			stockID: oid.Hex(),
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindStockByID", mock.Anything, oid).Return(stock, nil)
			},
			expectedOut: stock,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			rp := mocks.NewRepoItf(t)
			tt.repoSetup(rp)
			uc := NewUsecase(rp)

			//when
			out, err := uc.GetStockInfo(context.Background(), tt.stockID)

			//then
			assert.Equal(t, tt.expectedOut, out)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestGetStockInfoReadsThroughCache(t *testing.T) {
	oid := primitive.NewObjectID()
	stock := &models.Stock{Id: models.DocumentID(oid.Hex()), Name: "Infosys", Extra: bson.M{"sector": "IT"}}

	rp := mocks.NewRepoItf(t)
	rp.On("FindStockByID", mock.Anything, oid).Return(stock, nil).Once()
	uc := NewUsecase(rp, WithCache(newMemCache()))

	first, err := uc.GetStockInfo(context.Background(), oid.Hex())
	require.NoError(t, err)
	second, err := uc.GetStockInfo(context.Background(), oid.Hex())
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, "IT", second.Extra["sector"])
}

func TestGetStockTimeline(t *testing.T) {
	timeline := &models.StockTimeline{Id: "s1", Extra: bson.M{"points": bson.A{int32(1), int32(2)}}}

	t.Run("required", func(t *testing.T) {
		uc := NewUsecase(mocks.NewRepoItf(t))
		_, err := uc.GetStockTimeline(context.Background(), "")
		assert.Equal(t, constant.ErrStockIDRequired, err)
	})

	t.Run("not found", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("FindStockTimeline", mock.Anything, "s1").Return(nil, repo.ErrNotFound)
		uc := NewUsecase(rp)

		_, err := uc.GetStockTimeline(context.Background(), "s1")
		assert.Equal(t, constant.ErrTimelineNotFound, err)
	})

	t.Run("found and cached", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("FindStockTimeline", mock.Anything, "s1").Return(timeline, nil).Once()
		uc := NewUsecase(rp, WithCache(newMemCache()))

		out, err := uc.GetStockTimeline(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, timeline, out)

		cached, err := uc.GetStockTimeline(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, models.DocumentID("s1"), cached.Id)
	})
}

func TestGetFavorites(t *testing.T) {
	favs := []models.Favorite{{UserID: "u1", ItemID: "s1", ItemType: "stock"}}

	t.Run("user id required", func(t *testing.T) {
		uc := NewUsecase(mocks.NewRepoItf(t))
		_, err := uc.GetFavorites(context.Background(), "", "")
		assert.Equal(t, constant.ErrUserIDRequired, err)
	})

	t.Run("filters by type", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("FindFavorites", mock.Anything, "u1", "stock").Return(favs, nil)
		uc := NewUsecase(rp)

		out, err := uc.GetFavorites(context.Background(), "u1", "stock")
		require.NoError(t, err)
		assert.Equal(t, favs, out)
	})

	t.Run("empty is not nil", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("FindFavorites", mock.Anything, "u1", "").Return(nil, nil)
		uc := NewUsecase(rp)

		out, err := uc.GetFavorites(context.Background(), "u1", "")
		require.NoError(t, err)
		assert.NotNil(t, out)
	})
}

func TestAddFavorite(t *testing.T) {
	req := dto.AddFavoriteReq{UserID: "u1", ItemID: "s1", ItemType: "stock", ItemName: "Infosys"}
	key := models.FavoriteKey{UserID: "u1", ItemID: "s1", ItemType: "stock"}
	existing := &models.Favorite{UserID: "u1", ItemID: "s1", ItemType: "stock"}

	testCases := []struct {
		name           string
		repoSetup      func(rp *mocks.RepoItf)
		publishErr     error
		expectedAdded  bool
		expectedErr    error
		expectedEvents []models.FavoriteEvent
	}{
		{
			name: "already in favorites",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFavorite", mock.Anything, key).Return(existing, nil)
			},
			expectedAdded: false,
		},
		{
			name: "added",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFavorite", mock.Anything, key).Return(nil, repo.ErrNotFound)
				rp.On("InsertFavorite", mock.Anything, mock.MatchedBy(func(f *models.Favorite) bool {
					return f.Key() == key && f.ItemName == "Infosys" && f.CreatedAt.Equal(stampTime)
				})).Return(nil)
			},
			expectedAdded: true,
			expectedEvents: []models.FavoriteEvent{{
				Type: models.EventFavoriteAdded, UserID: "u1", ItemID: "s1", ItemType: "stock", ItemName: "Infosys", At: stampTime,
			}},
		},
		{
			name: "concurrent insert counts as existing",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFavorite", mock.Anything, key).Return(nil, repo.ErrNotFound)
				rp.On("InsertFavorite", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)
			},
			expectedAdded: false,
		},
		{
			name: "publish failure does not fail the request",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFavorite", mock.Anything, key).Return(nil, repo.ErrNotFound)
				rp.On("InsertFavorite", mock.Anything, mock.Anything).Return(nil)
			},
			publishErr:    errors.New("broker down"),
			expectedAdded: true,
			expectedEvents: []models.FavoriteEvent{{
				Type: models.EventFavoriteAdded, UserID: "u1", ItemID: "s1", ItemType: "stock", ItemName: "Infosys", At: stampTime,
			}},
		},
		{
			name: "insert error",
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("FindFavorite", mock.Anything, key).Return(nil, repo.ErrNotFound)
				rp.On("InsertFavorite", mock.Anything, mock.Anything).Return(errRepo)
			},
			expectedErr: errRepo,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			rp := mocks.NewRepoItf(t)
			tt.repoSetup(rp)
			pub := &recordingPublisher{err: tt.publishErr}
			uc := NewUsecase(rp, WithEvents(pub), WithClock(fixedClock))

			//when
			fav, added, err := uc.AddFavorite(context.Background(), req)

			//then
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expectedAdded, added)
			if !added {
				assert.Nil(t, fav)
			}
			assert.Equal(t, tt.expectedEvents, pub.events)
		})
	}
}

func TestRemoveFavorite(t *testing.T) {
	key := models.FavoriteKey{UserID: "u1", ItemID: "F1", ItemType: "fund"}

	testCases := []struct {
		name           string
		key            models.FavoriteKey
		repoSetup      func(rp *mocks.RepoItf)
		expectedErr    error
		expectedEvents int
	}{
		{
			name:        "missing user id",
			key:         models.FavoriteKey{ItemID: "F1", ItemType: "fund"},
			repoSetup:   func(rp *mocks.RepoItf) {},
			expectedErr: constant.ErrFavoriteKeyRequired,
		},
		{
			name:        "missing type",
			key:         models.FavoriteKey{UserID: "u1", ItemID: "F1"},
			repoSetup:   func(rp *mocks.RepoItf) {},
			expectedErr: constant.ErrFavoriteKeyRequired,
		},
		{
			name: "not found",
			key:  key,
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("DeleteFavorite", mock.Anything, key).Return(repo.ErrNotFound)
			},
			expectedErr: constant.ErrFavoriteNotFound,
		},
		{
			name: "removed",
			key:  key,
			repoSetup: func(rp *mocks.RepoItf) {
				rp.On("DeleteFavorite", mock.Anything, key).Return(nil)
			},
			expectedEvents: 1,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			rp := mocks.NewRepoItf(t)
			tt.repoSetup(rp)
			pub := &recordingPublisher{}
			uc := NewUsecase(rp, WithEvents(pub), WithClock(fixedClock))

			//when
			err := uc.RemoveFavorite(context.Background(), tt.key)

			//then
			assert.ErrorIs(t, err, tt.expectedErr)
			require.Len(t, pub.events, tt.expectedEvents)
			if tt.expectedEvents > 0 {
				assert.Equal(t, models.EventFavoriteRemoved, pub.events[0].Type)
				assert.Equal(t, "F1", pub.events[0].ItemID)
			}
		})
	}
}

func TestGetFavoriteItems(t *testing.T) {
	t.Run("no favorites skips the lookup", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("FindFavorites", mock.Anything, "u1", models.ItemTypeStock).Return(nil, nil)
		uc := NewUsecase(rp)

		out, hasFavorites, err := uc.GetFavoriteStocks(context.Background(), "u1")
		require.NoError(t, err)
		assert.False(t, hasFavorites)
		assert.Equal(t, []models.Stock{}, out)
	})

	t.Run("favorites matching no stock", func(t *testing.T) {
		rp := mocks.NewRepoItf(t)
		rp.On("FindFavorites", mock.Anything, "u1", models.ItemTypeStock).Return([]models.Favorite{{ItemID: "gone"}}, nil)
		rp.On("FindStocksByIDs", mock.Anything, []string{"gone"}).Return(nil, nil)
		uc := NewUsecase(rp)

		out, hasFavorites, err := uc.GetFavoriteStocks(context.Background(), "u1")
		require.NoError(t, err)
		assert.True(t, hasFavorites)
		assert.Equal(t, []models.Stock{}, out)
	})

	t.Run("stocks by favorite ids", func(t *testing.T) {
		favs := []models.Favorite{{ItemID: "s1"}, {ItemID: "65f0c0ffee00000000000001"}}
		stocks := []models.Stock{{Id: "s1"}}
		rp := mocks.NewRepoItf(t)
		rp.On("FindFavorites", mock.Anything, "u1", models.ItemTypeStock).Return(favs, nil)
		rp.On("FindStocksByIDs", mock.Anything, []string{"s1", "65f0c0ffee00000000000001"}).Return(stocks, nil)
		uc := NewUsecase(rp)

		out, hasFavorites, err := uc.GetFavoriteStocks(context.Background(), "u1")
		require.NoError(t, err)
		assert.True(t, hasFavorites)
		assert.Equal(t, stocks, out)
	})

	t.Run("funds by favorite ids", func(t *testing.T) {
		favs := []models.Favorite{{ItemID: "F1"}}
		funds := []models.FundHolding{{UniqueID: "F1"}}
		rp := mocks.NewRepoItf(t)
		rp.On("FindFavorites", mock.Anything, "u1", models.ItemTypeFund).Return(favs, nil)
		rp.On("FindFundHoldingsByIDs", mock.Anything, []string{"F1"}).Return(funds, nil)
		uc := NewUsecase(rp)

		out, hasFavorites, err := uc.GetFavoriteFunds(context.Background(), "u1")
		require.NoError(t, err)
		assert.True(t, hasFavorites)
		assert.Equal(t, funds, out)
	})

	t.Run("user id required", func(t *testing.T) {
		uc := NewUsecase(mocks.NewRepoItf(t))
		_, _, err := uc.GetFavoriteFunds(context.Background(), "")
		assert.Equal(t, constant.ErrUserIDRequired, err)
	})
}
