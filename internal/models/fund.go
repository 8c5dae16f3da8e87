package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

// FundHolding is one fund snapshot. Fields the API does not interpret are
// kept in Extra and passed through.
type FundHolding struct {
	Id           DocumentID `bson:"_id,omitempty"`
	UniqueID     string     `bson:"unique_id"`
	Name         string     `bson:"name"`
	Date         string     `bson:"date"`
	HoldingCount int64      `bson:"holding_count"`
	AddedCount   int64      `bson:"added_count"`
	RemovedCount int64      `bson:"removed_count"`
	Extra        bson.M     `bson:",inline"`
}

func (f FundHolding) known() map[string]any {
	return map[string]any{
		"_id":           f.Id,
		"unique_id":     f.UniqueID,
		"name":          f.Name,
		"date":          f.Date,
		"holding_count": f.HoldingCount,
		"added_count":   f.AddedCount,
		"removed_count": f.RemovedCount,
	}
}

func (f FundHolding) MarshalJSON() ([]byte, error) {
	return mergeJSON(f.Extra, f.known())
}

// FundSummary is one row of the per-fund aggregation for a snapshot date.
type FundSummary struct {
	Id           string `bson:"_id" json:"_id"`
	Name         string `bson:"name" json:"name"`
	HoldingCount int64  `bson:"holding_count" json:"holding_count"`
	AddedCount   int64  `bson:"added_count" json:"added_count"`
	RemovedCount int64  `bson:"removed_count" json:"removed_count"`
	LatestDate   string `bson:"latest_date" json:"latest_date"`
}

type FundDateCount struct {
	Date         string `json:"date"`
	HoldingCount int64  `json:"holding_count"`
}

// FundInfo is the latest snapshot of a fund together with its holding count
// history.
type FundInfo struct {
	FundHolding
	FundCount []FundDateCount
}

func (f FundInfo) MarshalJSON() ([]byte, error) {
	known := f.FundHolding.known()
	counts := f.FundCount
	if counts == nil {
		counts = []FundDateCount{}
	}
	known["fund_count"] = counts
	return mergeJSON(f.Extra, known)
}
