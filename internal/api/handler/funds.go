package handler

import (
	"net/http"

	"mf-api/internal/api/dto"

	"github.com/gin-gonic/gin"
)

func (hd *Handler) GetAllFunds(ctx *gin.Context) {
	var q dto.FundListQuery
	if !bindQuery(ctx, &q) {
		return
	}

	funds, total, err := hd.uc.ListFunds(ctx, q)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Funds fetched").
		WithRecords(funds).
		WithCount(total))
}

func (hd *Handler) GetFundInfo(ctx *gin.Context) {
	info, err := hd.uc.GetFundInfo(ctx, ctx.Query("fund_id"), ctx.Query("date"))
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Fund info fetched").WithRecords(info))
}
