package usecase

import (
	"context"
	"errors"
	"strings"

	"mf-api/internal/api/constant"
	"mf-api/internal/api/dto"
	"mf-api/internal/api/repo"
	"mf-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func stockKey(id string) string    { return "stock:" + id }
func timelineKey(id string) string { return "timeline:" + id }

func (uc *Usecase) ListStocks(ctx context.Context, q dto.StockListQuery) ([]models.Stock, int64, error) {
	search := strings.TrimSpace(q.Search)

	total, err := uc.rp.CountStocks(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	stocks, err := uc.rp.ListStocks(ctx, search, repo.PageParams{
		Skip:   q.Skip,
		Limit:  q.Limit,
		SortBy: q.SortBy,
		Desc:   q.Order == constant.OrderDesc,
	})
	if err != nil {
		return nil, 0, err
	}
	if stocks == nil {
		stocks = []models.Stock{}
	}
	return stocks, total, nil
}

func (uc *Usecase) GetStockInfo(ctx context.Context, stockID string) (*models.Stock, error) {
	if stockID == "" {
		return nil, constant.ErrStockIDRequired
	}
	oid, err := primitive.ObjectIDFromHex(stockID)
	if err != nil {
		return nil, constant.ErrInvalidStockID
	}

	var stock models.Stock
	if uc.cached(ctx, stockKey(stockID), &stock) {
		return &stock, nil
	}

	found, err := uc.rp.FindStockByID(ctx, oid)
	if errors.Is(err, repo.ErrNotFound) {
		uc.logFor(ctx).WithField("stockId", stockID).Info("stock not found")
		return nil, constant.ErrStockNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.store(ctx, stockKey(stockID), found)
	return found, nil
}

func (uc *Usecase) GetStockTimeline(ctx context.Context, stockID string) (*models.StockTimeline, error) {
	if stockID == "" {
		return nil, constant.ErrStockIDRequired
	}

	var timeline models.StockTimeline
	if uc.cached(ctx, timelineKey(stockID), &timeline) {
		return &timeline, nil
	}

	found, err := uc.rp.FindStockTimeline(ctx, stockID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, constant.ErrTimelineNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.store(ctx, timelineKey(stockID), found)
	return found, nil
}
