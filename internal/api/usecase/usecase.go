package usecase

import (
	"context"
	"io"
	"time"

	"mf-api/internal/api/dto"
	"mf-api/internal/api/repo"
	"mf-api/internal/logger"
	"mf-api/internal/models"

	"github.com/sirupsen/logrus"
)

//go:generate mockery --config ../../../.mockery.yaml
type UsecaseItf interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, req dto.CreateUserReq) (user *models.User, created bool, err error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, req dto.UpdateUserReq) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListFunds(ctx context.Context, q dto.FundListQuery) ([]models.FundSummary, int64, error)
	GetFundInfo(ctx context.Context, fundID, date string) (*models.FundInfo, error)
	RefreshLatestFundDate(ctx context.Context) error

	ListStocks(ctx context.Context, q dto.StockListQuery) ([]models.Stock, int64, error)
	GetStockInfo(ctx context.Context, stockID string) (*models.Stock, error)
	GetStockTimeline(ctx context.Context, stockID string) (*models.StockTimeline, error)

	GetFavorites(ctx context.Context, userID, itemType string) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, req dto.AddFavoriteReq) (fav *models.Favorite, added bool, err error)
	RemoveFavorite(ctx context.Context, key models.FavoriteKey) error
	// hasFavorites is false when the user has no favorites of the type,
	// as opposed to favorites that match no document.
	GetFavoriteStocks(ctx context.Context, userID string) (stocks []models.Stock, hasFavorites bool, err error)
	GetFavoriteFunds(ctx context.Context, userID string) (funds []models.FundHolding, hasFavorites bool, err error)
}

// Cache is a best-effort read cache of documents. Get decodes the entry for
// key into dest and reports whether it was found.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// EventPublisher announces favorite changes to other services.
type EventPublisher interface {
	Publish(ctx context.Context, event models.FavoriteEvent) error
}

type Usecase struct {
	rp     repo.RepoItf
	cache  Cache
	events EventPublisher
	log    logrus.FieldLogger
	now    func() time.Time
}

type Option func(*Usecase)

func WithCache(c Cache) Option {
	return func(uc *Usecase) { uc.cache = c }
}

func WithEvents(p EventPublisher) Option {
	return func(uc *Usecase) { uc.events = p }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(uc *Usecase) { uc.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(uc *Usecase) { uc.now = now }
}

func NewUsecase(rp repo.RepoItf, opts ...Option) *Usecase {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	uc := &Usecase{
		rp:     rp,
		cache:  noopCache{},
		events: noopPublisher{},
		log:    discard,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *Usecase) Ping(ctx context.Context) error {
	return uc.rp.Ping(ctx)
}

// timestamp is the current time at MongoDB's millisecond precision, so
// values returned to callers match what was stored.
func (uc *Usecase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Millisecond)
}

func (uc *Usecase) logFor(ctx context.Context) logrus.FieldLogger {
	return logger.FromCtx(ctx, uc.log)
}

// cached loads key from the cache into dest. Cache failures are logged
// and treated as a miss.
func (uc *Usecase) cached(ctx context.Context, key string, dest any) bool {
	ok, err := uc.cache.Get(ctx, key, dest)
	if err != nil {
		uc.logFor(ctx).WithError(err).WithField("key", key).Warn("cache get failed")
		return false
	}
	return ok
}

func (uc *Usecase) store(ctx context.Context, key string, value any) {
	if err := uc.cache.Set(ctx, key, value); err != nil {
		uc.logFor(ctx).WithError(err).WithField("key", key).Warn("cache set failed")
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, any) error         { return nil }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, models.FavoriteEvent) error { return nil }
