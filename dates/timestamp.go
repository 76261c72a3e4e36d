package dates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timestamp is a time.Time that travels as a canonical string in JSON and as a
// BSON datetime in MongoDB documents. Either side accepts any text that
// ParseString understands.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// NowTimestamp wraps the clock's current UTC instant.
func NowTimestamp(clock Clock) Timestamp {
	return Timestamp{Time: Now(clock, Offset{})}
}

func (ts Timestamp) String() string {
	return ToCanonicalString(ts.Time)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ToCanonicalString(ts.Time))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseString(text)
	if err != nil {
		return err
	}
	ts.Time = parsed
	return nil
}

// MarshalBSONValue stores the instant as a BSON datetime. BSON keeps
// millisecond precision only.
func (ts Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if ts.IsZero() {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(primitive.NewDateTimeFromTime(ts.Time))
}

func (ts *Timestamp) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		ts.Time = time.Time{}
	case bson.TypeDateTime:
		dt, ok := raw.DateTimeOK()
		if !ok {
			return fmt.Errorf("malformed BSON datetime")
		}
		ts.Time = primitive.DateTime(dt).Time().UTC()
	case bson.TypeString:
		text, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("malformed BSON string")
		}
		parsed, err := ParseString(text)
		if err != nil {
			return err
		}
		ts.Time = parsed
	default:
		return fmt.Errorf("cannot decode BSON %s into a timestamp", t)
	}
	return nil
}
