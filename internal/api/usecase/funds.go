package usecase

import (
	"context"
	"errors"

	"mf-api/internal/api/constant"
	"mf-api/internal/api/dto"
	"mf-api/internal/api/repo"
	"mf-api/internal/models"
)

const latestFundDateKey = "funds:latest_date"

type fundDateEntry struct {
	Date string `bson:"date"`
}

// ListFunds returns one page of per-fund summaries for q.Date, or for the
// latest snapshot date when q.Date is empty, and the number of holding
// documents on that date.
func (uc *Usecase) ListFunds(ctx context.Context, q dto.FundListQuery) ([]models.FundSummary, int64, error) {
	date := q.Date
	if date == "" {
		var err error
		if date, err = uc.latestFundDate(ctx); err != nil {
			return nil, 0, err
		}
	}

	total, err := uc.rp.CountFundHoldings(ctx, date)
	if err != nil {
		return nil, 0, err
	}

	funds, err := uc.rp.ListFundSummaries(ctx, date, repo.PageParams{
		Skip:   q.Skip,
		Limit:  q.Limit,
		SortBy: q.SortBy,
		Desc:   q.Order == constant.OrderDesc,
	})
	if err != nil {
		return nil, 0, err
	}
	if funds == nil {
		funds = []models.FundSummary{}
	}
	return funds, total, nil
}

func (uc *Usecase) latestFundDate(ctx context.Context) (string, error) {
	var entry fundDateEntry
	if uc.cached(ctx, latestFundDateKey, &entry) && entry.Date != "" {
		return entry.Date, nil
	}

	date, err := uc.rp.LatestFundDate(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return "", constant.ErrNoFundRecords
	}
	if err != nil {
		return "", err
	}

	uc.store(ctx, latestFundDateKey, fundDateEntry{Date: date})
	return date, nil
}

// RefreshLatestFundDate re-reads the latest snapshot date into the cache.
func (uc *Usecase) RefreshLatestFundDate(ctx context.Context) error {
	date, err := uc.rp.LatestFundDate(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		uc.logFor(ctx).Debug("no fund holdings yet, nothing to refresh")
		return nil
	}
	if err != nil {
		return err
	}

	if err := uc.cache.Set(ctx, latestFundDateKey, fundDateEntry{Date: date}); err != nil {
		return err
	}
	uc.logFor(ctx).WithField("date", date).Debug("latest fund date refreshed")
	return nil
}

// GetFundInfo returns the latest snapshot of fundID (restricted to date when
// set) with the holding count of every matching snapshot.
func (uc *Usecase) GetFundInfo(ctx context.Context, fundID, date string) (*models.FundInfo, error) {
	if fundID == "" {
		return nil, constant.ErrFundIDRequired
	}

	holdings, err := uc.rp.FindFundHoldings(ctx, fundID, date)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return nil, constant.ErrFundNotFound
	}

	counts := make([]models.FundDateCount, 0, len(holdings))
	for _, h := range holdings {
		counts = append(counts, models.FundDateCount{Date: h.Date, HoldingCount: h.HoldingCount})
	}

	return &models.FundInfo{
		FundHolding: holdings[len(holdings)-1],
		FundCount:   counts,
	}, nil
}
