package repo

import (
	"context"
	"errors"
	"time"

	"mf-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (rp *Repo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, rp.c.Users, bson.M{"email": email})
}

func (rp *Repo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findOne[models.User](ctx, rp.c.Users, bson.M{"_id": id})
}

func (rp *Repo) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := rp.c.Users.Find(ctx, bson.D{})
	return findAll[models.User](ctx, cursor, err)
}

// InsertUser stores user and sets its Id.
func (rp *Repo) InsertUser(ctx context.Context, user *models.User) error {
	res, err := rp.c.Users.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.Id = oid
	}
	return nil
}

// UpdateUser applies update and returns the document after the change.
func (rp *Repo) UpdateUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate, now time.Time) (*models.User, error) {
	var user models.User
	err := rp.c.Users.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update.SetDocument(now)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (rp *Repo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := rp.c.Users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
