package repo

import (
	"context"

	"mf-api/internal/models"
	mongoGo "mf-api/internal/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func keyFilter(key models.FavoriteKey) bson.M {
	return bson.M{"userId": key.UserID, "itemId": key.ItemID, "itemType": key.ItemType}
}

// FindFavorites lists a user's favorites, optionally restricted to one item
// type.
func (rp *Repo) FindFavorites(ctx context.Context, userID, itemType string) ([]models.Favorite, error) {
	filter := bson.M{"userId": userID}
	if itemType != "" {
		filter["itemType"] = itemType
	}
	cursor, err := rp.c.Favorites.Find(ctx, filter)
	return findAll[models.Favorite](ctx, cursor, err)
}

func (rp *Repo) FindFavorite(ctx context.Context, key models.FavoriteKey) (*models.Favorite, error) {
	return findOne[models.Favorite](ctx, rp.c.Favorites, keyFilter(key))
}

// InsertFavorite stores fav and sets its Id. A concurrent insert of the
// same triple yields ErrDuplicate.
func (rp *Repo) InsertFavorite(ctx context.Context, fav *models.Favorite) error {
	res, err := rp.c.Favorites.InsertOne(ctx, fav)
	if mongoGo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		fav.Id = oid
	}
	return nil
}

func (rp *Repo) DeleteFavorite(ctx context.Context, key models.FavoriteKey) error {
	res, err := rp.c.Favorites.DeleteOne(ctx, keyFilter(key))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
