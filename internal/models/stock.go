package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

type Stock struct {
	Id    DocumentID `bson:"_id"`
	Name  string     `bson:"name"`
	Extra bson.M     `bson:",inline"`
}

func (s Stock) MarshalJSON() ([]byte, error) {
	return mergeJSON(s.Extra, map[string]any{
		"_id":  s.Id,
		"name": s.Name,
	})
}

// StockTimeline is keyed by the stock id string; its content is passed
// through untouched.
type StockTimeline struct {
	Id    DocumentID `bson:"_id"`
	Extra bson.M     `bson:",inline"`
}

func (s StockTimeline) MarshalJSON() ([]byte, error) {
	return mergeJSON(s.Extra, map[string]any{"_id": s.Id})
}
