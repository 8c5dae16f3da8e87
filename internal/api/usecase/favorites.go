package usecase

import (
	"context"
	"errors"

	"mf-api/internal/api/constant"
	"mf-api/internal/api/dto"
	"mf-api/internal/api/repo"
	"mf-api/internal/models"
)

func (uc *Usecase) GetFavorites(ctx context.Context, userID, itemType string) ([]models.Favorite, error) {
	if userID == "" {
		return nil, constant.ErrUserIDRequired
	}
	favs, err := uc.rp.FindFavorites(ctx, userID, itemType)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []models.Favorite{}
	}
	return favs, nil
}

// AddFavorite stores the favorite unless the user already has it; added is
// false in that case and fav is the stored favorite when known.
func (uc *Usecase) AddFavorite(ctx context.Context, req dto.AddFavoriteReq) (*models.Favorite, bool, error) {
	fav := req.ToModel()
	log := uc.logFor(ctx).WithField("userId", fav.UserID).WithField("itemType", fav.ItemType).WithField("itemId", fav.ItemID)

	_, err := uc.rp.FindFavorite(ctx, fav.Key())
	if err == nil {
		log.Info("favorite already exists")
		return nil, false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}

	fav.CreatedAt = uc.timestamp()
	err = uc.rp.InsertFavorite(ctx, &fav)
	if errors.Is(err, repo.ErrDuplicate) {
		log.Info("favorite added concurrently")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	log.Info("favorite added")
	uc.publish(ctx, models.EventFavoriteAdded, fav)
	return &fav, true, nil
}

func (uc *Usecase) RemoveFavorite(ctx context.Context, key models.FavoriteKey) error {
	if key.UserID == "" || key.ItemType == "" {
		return constant.ErrFavoriteKeyRequired
	}

	err := uc.rp.DeleteFavorite(ctx, key)
	if errors.Is(err, repo.ErrNotFound) {
		return constant.ErrFavoriteNotFound
	}
	if err != nil {
		return err
	}

	uc.logFor(ctx).WithField("userId", key.UserID).WithField("itemType", key.ItemType).WithField("itemId", key.ItemID).Info("favorite removed")
	uc.publish(ctx, models.EventFavoriteRemoved, models.Favorite{
		UserID:   key.UserID,
		ItemID:   key.ItemID,
		ItemType: key.ItemType,
	})
	return nil
}

func (uc *Usecase) GetFavoriteStocks(ctx context.Context, userID string) ([]models.Stock, bool, error) {
	ids, err := uc.favoriteIDs(ctx, userID, models.ItemTypeStock)
	if err != nil {
		return nil, false, err
	}
	if len(ids) == 0 {
		return []models.Stock{}, false, nil
	}
	stocks, err := uc.rp.FindStocksByIDs(ctx, ids)
	if err != nil {
		return nil, false, err
	}
	if stocks == nil {
		stocks = []models.Stock{}
	}
	return stocks, true, nil
}

func (uc *Usecase) GetFavoriteFunds(ctx context.Context, userID string) ([]models.FundHolding, bool, error) {
	ids, err := uc.favoriteIDs(ctx, userID, models.ItemTypeFund)
	if err != nil {
		return nil, false, err
	}
	if len(ids) == 0 {
		return []models.FundHolding{}, false, nil
	}
	funds, err := uc.rp.FindFundHoldingsByIDs(ctx, ids)
	if err != nil {
		return nil, false, err
	}
	if funds == nil {
		funds = []models.FundHolding{}
	}
	return funds, true, nil
}

func (uc *Usecase) favoriteIDs(ctx context.Context, userID, itemType string) ([]string, error) {
	if userID == "" {
		return nil, constant.ErrUserIDRequired
	}
	favs, err := uc.rp.FindFavorites(ctx, userID, itemType)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ItemID)
	}
	return ids, nil
}

// publish never fails the caller; the change is already stored.
func (uc *Usecase) publish(ctx context.Context, eventType string, fav models.Favorite) {
	event := models.FavoriteEvent{
		Type:     eventType,
		UserID:   fav.UserID,
		ItemID:   fav.ItemID,
		ItemType: fav.ItemType,
		ItemName: fav.ItemName,
		At:       uc.timestamp(),
	}
	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logFor(ctx).WithError(err).WithField("event", eventType).Warn("failed to publish favorite event")
	}
}
