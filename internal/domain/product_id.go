package domain

import (
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const objectIDHexLength = 24

// ProductID identifies a product either by a native ObjectID or, for records
// seeded outside the service, by an opaque string stored as _id.
type ProductID struct {
	objectID primitive.ObjectID
	value    string
	native   bool
}

func NativeProductID(id primitive.ObjectID) ProductID {
	return ProductID{objectID: id, native: true}
}

func StringProductID(id string) ProductID {
	return ProductID{value: id}
}

// ParseProductID trims raw and picks the native form only for exactly 24
// hex characters; anything else is looked up as a literal string id.
func ParseProductID(raw string) ProductID {
	id := strings.TrimSpace(raw)
	if len(id) == objectIDHexLength {
		if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
			return NativeProductID(objectID)
		}
	}

	return StringProductID(id)
}

func (id ProductID) IsNative() bool {
	return id.native
}

func (id ProductID) ObjectID() (primitive.ObjectID, bool) {
	return id.objectID, id.native
}

// IsZero reports an unset id so that inserts leave _id to the store.
func (id ProductID) IsZero() bool {
	if id.native {
		return id.objectID.IsZero()
	}
	return id.value == ""
}

func (id ProductID) String() string {
	if id.native {
		return id.objectID.Hex()
	}
	return id.value
}

// FilterValue is the value matched against _id in store filters.
func (id ProductID) FilterValue() interface{} {
	if id.native {
		return id.objectID
	}
	return id.value
}

func (id ProductID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id ProductID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.FilterValue())
}

func (id *ProductID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeObjectID:
		*id = NativeProductID(raw.ObjectID())
	case bson.TypeString:
		*id = StringProductID(raw.StringValue())
	default:
		*id = StringProductID(raw.String())
	}

	return nil
}
