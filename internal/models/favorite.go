package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ItemTypeStock = "stock"
	ItemTypeFund  = "fund"
)

type Favorite struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    string             `bson:"userId" json:"userId"`
	ItemID    string             `bson:"itemId" json:"itemId"`
	ItemType  string             `bson:"itemType" json:"itemType"`
	ItemName  string             `bson:"itemName" json:"itemName"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// FavoriteKey identifies a favorite; the triple is unique per user.
type FavoriteKey struct {
	UserID   string
	ItemID   string
	ItemType string
}

func (f Favorite) Key() FavoriteKey {
	return FavoriteKey{UserID: f.UserID, ItemID: f.ItemID, ItemType: f.ItemType}
}

const (
	EventFavoriteAdded   = "favorite.added"
	EventFavoriteRemoved = "favorite.removed"
)

// FavoriteEvent is published whenever a favorite is added or removed.
type FavoriteEvent struct {
	Type     string    `json:"type"`
	UserID   string    `json:"userId"`
	ItemID   string    `json:"itemId"`
	ItemType string    `json:"itemType"`
	ItemName string    `json:"itemName,omitempty"`
	At       time.Time `json:"at"`
}

// ProcessedEvent marks a favorite event as applied. MessageKey is unique,
// so a redelivered message cannot be counted twice.
type ProcessedEvent struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	MessageKey  string             `bson:"messageKey"`
	Type        string             `bson:"type"`
	UserID      string             `bson:"userId"`
	ItemID      string             `bson:"itemId"`
	ItemType    string             `bson:"itemType"`
	ItemName    string             `bson:"itemName,omitempty"`
	At          time.Time          `bson:"at"`
	ProcessedAt time.Time          `bson:"processedAt"`
}

// FavoriteCount is how many users currently hold an item in favorites.
type FavoriteCount struct {
	ItemID    string    `bson:"itemId" json:"itemId"`
	ItemType  string    `bson:"itemType" json:"itemType"`
	ItemName  string    `bson:"itemName,omitempty" json:"itemName,omitempty"`
	Count     int64     `bson:"count" json:"count"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
