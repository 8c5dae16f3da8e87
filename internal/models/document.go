package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DocumentID is an _id that may be stored either as an ObjectID or as a
// plain string. It is always exposed as a string.
type DocumentID string

func (id *DocumentID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	if oid, ok := raw.ObjectIDOK(); ok {
		*id = DocumentID(oid.Hex())
		return nil
	}
	if s, ok := raw.StringValueOK(); ok {
		*id = DocumentID(s)
		return nil
	}
	return fmt.Errorf("unsupported _id type %s", t)
}

// mergeJSON renders extra together with the known fields of a document.
// Known fields win over extra keys of the same name.
func mergeJSON(extra bson.M, known map[string]any) ([]byte, error) {
	out := make(map[string]any, len(extra)+len(known))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}
	return json.Marshal(out)
}
