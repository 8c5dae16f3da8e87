package repo

import (
	"context"
	"errors"
	"time"

	"mf-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("document already exists")
)

// PageParams describes a sorted page of a listing.
type PageParams struct {
	Skip   int64
	Limit  int64
	SortBy string
	Desc   bool
}

func (p PageParams) direction() int {
	if p.Desc {
		return -1
	}
	return 1
}

// sort orders by the requested field, then by _id so pages are stable.
func (p PageParams) sort() bson.D {
	s := bson.D{{Key: p.SortBy, Value: p.direction()}}
	if p.SortBy != "_id" {
		s = append(s, bson.E{Key: "_id", Value: 1})
	}
	return s
}

//go:generate mockery --config ../../../.mockery.yaml
type RepoItf interface {
	Ping(context.Context) error
	EnsureIndexes(context.Context) error

	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate, now time.Time) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error

	LatestFundDate(ctx context.Context) (string, error)
	CountFundHoldings(ctx context.Context, date string) (int64, error)
	ListFundSummaries(ctx context.Context, date string, page PageParams) ([]models.FundSummary, error)
	FindFundHoldings(ctx context.Context, fundID, date string) ([]models.FundHolding, error)
	FindFundHoldingsByIDs(ctx context.Context, fundIDs []string) ([]models.FundHolding, error)

	CountStocks(ctx context.Context, search string) (int64, error)
	ListStocks(ctx context.Context, search string, page PageParams) ([]models.Stock, error)
	FindStockByID(ctx context.Context, id primitive.ObjectID) (*models.Stock, error)
	FindStocksByIDs(ctx context.Context, ids []string) ([]models.Stock, error)
	FindStockTimeline(ctx context.Context, stockID string) (*models.StockTimeline, error)

	FindFavorites(ctx context.Context, userID, itemType string) ([]models.Favorite, error)
	FindFavorite(ctx context.Context, key models.FavoriteKey) (*models.Favorite, error)
	InsertFavorite(ctx context.Context, fav *models.Favorite) error
	DeleteFavorite(ctx context.Context, key models.FavoriteKey) error
}

// Collections groups the collections the repository reads and writes.
type Collections struct {
	Funds     *mongo.Collection
	Stocks    *mongo.Collection
	Timelines *mongo.Collection
	Favorites *mongo.Collection
	Users     *mongo.Collection
}

type Repo struct {
	client *mongo.Client
	c      Collections
}

func NewRepo(client *mongo.Client, collections Collections) *Repo {
	return &Repo{client: client, c: collections}
}

func (rp *Repo) Ping(ctx context.Context) error {
	return rp.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the favorites indexes; creating an existing index
// is a no-op.
func (rp *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := rp.c.Favorites.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "itemType", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "itemId", Value: 1}, {Key: "itemType", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// findOne decodes a single document, mapping "no documents" to ErrNotFound.
func findOne[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var out T
	err := col.FindOne(ctx, filter, opts...).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// findAll decodes every document of the cursor. It returns nil when
// nothing matched.
func findAll[T any](ctx context.Context, cursor *mongo.Cursor, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
