package repo

import (
	"context"
	"regexp"

	"mf-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// stockFilter matches names containing search, case-insensitively. The
// search text is matched literally.
func stockFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}}
}

func (rp *Repo) CountStocks(ctx context.Context, search string) (int64, error) {
	return rp.c.Stocks.CountDocuments(ctx, stockFilter(search))
}

func (rp *Repo) ListStocks(ctx context.Context, search string, page PageParams) ([]models.Stock, error) {
	cursor, err := rp.c.Stocks.Find(ctx, stockFilter(search),
		options.Find().
			SetSort(page.sort()).
			SetSkip(page.Skip).
			SetLimit(page.Limit))
	return findAll[models.Stock](ctx, cursor, err)
}

func (rp *Repo) FindStockByID(ctx context.Context, id primitive.ObjectID) (*models.Stock, error) {
	return findOne[models.Stock](ctx, rp.c.Stocks, bson.M{"_id": id})
}

// FindStocksByIDs matches each id as an ObjectID when it is one, and as a
// plain string otherwise.
func (rp *Repo) FindStocksByIDs(ctx context.Context, ids []string) ([]models.Stock, error) {
	cursor, err := rp.c.Stocks.Find(ctx, bson.M{"_id": bson.M{"$in": stockIDValues(ids)}})
	return findAll[models.Stock](ctx, cursor, err)
}

func stockIDValues(ids []string) bson.A {
	values := make(bson.A, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			values = append(values, oid)
			continue
		}
		values = append(values, id)
	}
	return values
}

func (rp *Repo) FindStockTimeline(ctx context.Context, stockID string) (*models.StockTimeline, error) {
	return findOne[models.StockTimeline](ctx, rp.c.Timelines, bson.M{"_id": stockID})
}
