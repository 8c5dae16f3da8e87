package handler

import (
	"net/http"

	"mf-api/internal/api/dto"
	"mf-api/internal/models"

	"github.com/gin-gonic/gin"
)

func (hd *Handler) GetFavorites(ctx *gin.Context) {
	favs, err := hd.uc.GetFavorites(ctx, ctx.Query("userId"), ctx.Query("type"))
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Favorites fetched").
		WithData(dto.GroupFavorites(favs)).
		WithCount(int64(len(favs))))
}

// AddFavorite serves both POST /api/favorites and its rpc/add alias.
func (hd *Handler) AddFavorite(ctx *gin.Context) {
	var req dto.AddFavoriteReq
	if !bindJSON(ctx, &req) {
		return
	}

	fav, added, err := hd.uc.AddFavorite(ctx, req)
	if err != nil {
		ctx.Error(err)
		return
	}

	if !added {
		ctx.JSON(http.StatusOK, dto.Success("Already in favorites"))
		return
	}
	ctx.JSON(http.StatusOK, dto.Success("Added").WithData(fav))
}

func (hd *Handler) RemoveFavorite(ctx *gin.Context) {
	key := models.FavoriteKey{
		UserID:   ctx.Query("userId"),
		ItemID:   ctx.Param("item_id"),
		ItemType: ctx.Query("type"),
	}
	hd.removeFavorite(ctx, key)
}

func (hd *Handler) RemoveFavoriteRPC(ctx *gin.Context) {
	var req dto.RemoveFavoriteReq
	if !bindJSON(ctx, &req) {
		return
	}
	hd.removeFavorite(ctx, req.ToKey())
}

func (hd *Handler) removeFavorite(ctx *gin.Context, key models.FavoriteKey) {
	if err := hd.uc.RemoveFavorite(ctx, key); err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Removed"))
}

func (hd *Handler) GetFavoriteStocks(ctx *gin.Context) {
	stocks, hasFavorites, err := hd.uc.GetFavoriteStocks(ctx, ctx.Query("userId"))
	if err != nil {
		ctx.Error(err)
		return
	}
	favoriteItems(ctx, "Favorite stocks fetched", stocks, len(stocks), hasFavorites)
}

func (hd *Handler) GetFavoriteFunds(ctx *gin.Context) {
	funds, hasFavorites, err := hd.uc.GetFavoriteFunds(ctx, ctx.Query("userId"))
	if err != nil {
		ctx.Error(err)
		return
	}
	favoriteItems(ctx, "Favorite funds fetched", funds, len(funds), hasFavorites)
}

func favoriteItems(ctx *gin.Context, message string, records any, n int, hasFavorites bool) {
	if !hasFavorites {
		ctx.JSON(http.StatusOK, dto.Success("No favorites").
			WithRecords([]any{}).
			WithCount(0))
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(message).
		WithRecords(records).
		WithCount(int64(n)))
}
