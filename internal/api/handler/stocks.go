package handler

import (
	"net/http"

	"mf-api/internal/api/dto"

	"github.com/gin-gonic/gin"
)

func (hd *Handler) GetAllStocks(ctx *gin.Context) {
	var q dto.StockListQuery
	if !bindQuery(ctx, &q) {
		return
	}

	stocks, total, err := hd.uc.ListStocks(ctx, q)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Stocks fetched").
		WithRecords(stocks).
		WithCount(total))
}

func (hd *Handler) GetStockInfo(ctx *gin.Context) {
	stock, err := hd.uc.GetStockInfo(ctx, ctx.Query("stock_id"))
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Stock fetched").WithRecords(stock))
}

func (hd *Handler) GetStockTimeline(ctx *gin.Context) {
	timeline, err := hd.uc.GetStockTimeline(ctx, ctx.Query("stock_id"))
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Timeline fetched").WithRecords(timeline))
}
