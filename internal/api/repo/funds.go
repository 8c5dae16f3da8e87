package repo

import (
	"context"

	"mf-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (rp *Repo) LatestFundDate(ctx context.Context) (string, error) {
	latest, err := findOne[models.FundHolding](ctx, rp.c.Funds, bson.D{},
		options.FindOne().
			SetSort(bson.D{{Key: "date", Value: -1}}).
			SetProjection(bson.M{"date": 1}))
	if err != nil {
		return "", err
	}
	return latest.Date, nil
}

func (rp *Repo) CountFundHoldings(ctx context.Context, date string) (int64, error) {
	return rp.c.Funds.CountDocuments(ctx, bson.M{"date": date})
}

// ListFundSummaries groups the holdings of date by fund and returns one
// sorted page of the groups.
func (rp *Repo) ListFundSummaries(ctx context.Context, date string, page PageParams) ([]models.FundSummary, error) {
	pipeline := fundSummaryPipeline(date, page)
	cursor, err := rp.c.Funds.Aggregate(ctx, pipeline)
	return findAll[models.FundSummary](ctx, cursor, err)
}

func fundSummaryPipeline(date string, page PageParams) bson.A {
	return bson.A{
		bson.D{{Key: "$match", Value: bson.M{"date": date}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$unique_id"},
			{Key: "name", Value: bson.M{"$first": "$name"}},
			{Key: "holding_count", Value: bson.M{"$max": "$holding_count"}},
			{Key: "added_count", Value: bson.M{"$max": "$added_count"}},
			{Key: "removed_count", Value: bson.M{"$max": "$removed_count"}},
			{Key: "latest_date", Value: bson.M{"$max": "$date"}},
		}}},
		bson.D{{Key: "$sort", Value: page.sort()}},
		bson.D{{Key: "$skip", Value: page.Skip}},
		bson.D{{Key: "$limit", Value: page.Limit}},
	}
}

// FindFundHoldings returns the snapshots of one fund, oldest first. An
// empty date matches every snapshot.
func (rp *Repo) FindFundHoldings(ctx context.Context, fundID, date string) ([]models.FundHolding, error) {
	filter := bson.M{"unique_id": fundID}
	if date != "" {
		filter["date"] = date
	}
	cursor, err := rp.c.Funds.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}))
	return findAll[models.FundHolding](ctx, cursor, err)
}

func (rp *Repo) FindFundHoldingsByIDs(ctx context.Context, fundIDs []string) ([]models.FundHolding, error) {
	cursor, err := rp.c.Funds.Find(ctx, bson.M{"unique_id": bson.M{"$in": fundIDs}})
	return findAll[models.FundHolding](ctx, cursor, err)
}
