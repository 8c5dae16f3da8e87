package models

import (
	"bytes"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Picture     *string            `bson:"picture" json:"picture"`
	PhoneNumber *string            `bson:"phoneNumber" json:"phoneNumber"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OptionalString is a clearable field of a partial update. Set reports
// whether the field was sent at all; a sent null leaves Value nil.
type OptionalString struct {
	Set   bool
	Value *string
}

func SomeString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// UserUpdate holds the fields of a partial update. Nil or unset fields are
// left untouched; Picture and PhoneNumber sent as null are cleared.
type UserUpdate struct {
	Name        *string
	Email       *string
	Picture     OptionalString
	PhoneNumber OptionalString
}

// SetDocument returns the $set document for the update, stamping updatedAt.
func (u UserUpdate) SetDocument(now time.Time) bson.D {
	set := bson.D{}
	if u.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *u.Name})
	}
	if u.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *u.Email})
	}
	if u.Picture.Set {
		set = append(set, bson.E{Key: "picture", Value: u.Picture.Value})
	}
	if u.PhoneNumber.Set {
		set = append(set, bson.E{Key: "phoneNumber", Value: u.PhoneNumber.Value})
	}
	return append(set, bson.E{Key: "updatedAt", Value: now})
}
