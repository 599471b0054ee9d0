package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type dateKind uint8

const (
	dateUnset dateKind = iota
	dateTime
	dateText
	dateNumber
)

// ProductDate is the product's date as the client supplied it. Values are
// kept verbatim: a datetime, free text such as "2024-05-01", or a number.
type ProductDate struct {
	kind   dateKind
	time   time.Time
	text   string
	number float64
}

func TimeProductDate(t time.Time) ProductDate {
	return ProductDate{kind: dateTime, time: t}
}

func TextProductDate(s string) ProductDate {
	return ProductDate{kind: dateText, text: s}
}

func NumberProductDate(n float64) ProductDate {
	return ProductDate{kind: dateNumber, number: n}
}

// IsZero reports an absent or falsy date.
func (d ProductDate) IsZero() bool {
	switch d.kind {
	case dateTime:
		return d.time.IsZero()
	case dateText:
		return d.text == ""
	case dateNumber:
		return d.number == 0
	default:
		return true
	}
}

func (d ProductDate) Time() (time.Time, bool) {
	return d.time, d.kind == dateTime
}

func (d ProductDate) String() string {
	switch d.kind {
	case dateTime:
		return d.time.Format(time.RFC3339Nano)
	case dateText:
		return d.text
	case dateNumber:
		return fmt.Sprint(d.number)
	default:
		return ""
	}
}

func (d ProductDate) value() interface{} {
	switch d.kind {
	case dateTime:
		return d.time
	case dateText:
		return d.text
	case dateNumber:
		return d.number
	default:
		return nil
	}
}

func (d ProductDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.value())
}

// UnmarshalJSON accepts a string or a number. null, "", 0 and false leave
// the date unset.
func (d *ProductDate) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*d = ProductDate{}
	case string:
		*d = TextProductDate(value)
	case float64:
		*d = NumberProductDate(value)
	case bool:
		if value {
			return fmt.Errorf("unsupported date value %s", data)
		}
		*d = ProductDate{}
	default:
		return fmt.Errorf("unsupported date value %s", data)
	}

	return nil
}

func (d ProductDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch d.kind {
	case dateTime:
		return bson.MarshalValue(primitive.NewDateTimeFromTime(d.time))
	case dateText:
		return bson.MarshalValue(d.text)
	case dateNumber:
		return bson.MarshalValue(d.number)
	default:
		return bson.TypeNull, nil, nil
	}
}

func (d *ProductDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeDateTime:
		*d = TimeProductDate(raw.Time().UTC())
	case bson.TypeString:
		*d = TextProductDate(raw.StringValue())
	case bson.TypeDouble:
		*d = NumberProductDate(raw.Double())
	case bson.TypeInt32:
		*d = NumberProductDate(float64(raw.Int32()))
	case bson.TypeInt64:
		*d = NumberProductDate(float64(raw.Int64()))
	case bson.TypeNull, bson.TypeUndefined:
		*d = ProductDate{}
	default:
		*d = TextProductDate(raw.String())
	}

	return nil
}
