package store

import (
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timeValue scans a timestamp column into t. pgx returns time.Time; SQLite
// returns time.Time only when it knows the declared column type, which it
// does not for RETURNING columns, and text otherwise.
type timeValue struct {
	t *time.Time
}

func (v timeValue) Scan(src any) error {
	switch s := src.(type) {
	case time.Time:
		*v.t = s
		return nil
	case string:
		return v.parse(s)
	case []byte:
		return v.parse(string(s))
	case nil:
		return fmt.Errorf("cannot scan NULL into time.Time")
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (v timeValue) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			*v.t = t
			return nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*v.t = t
		return nil
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

// nullTimeValue is the nullable form of [timeValue].
type nullTimeValue struct {
	t **time.Time
}

func (v nullTimeValue) Scan(src any) error {
	if src == nil {
		*v.t = nil
		return nil
	}

	var t time.Time
	if err := (timeValue{t: &t}).Scan(src); err != nil {
		return err
	}
	*v.t = &t
	return nil
}
