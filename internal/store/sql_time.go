package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timeColumn scans timestamp columns from either driver. pgx always yields
// time.Time; go-sqlite3 yields text when it cannot see the declared column
// type, as with RETURNING clauses.
type timeColumn struct {
	dst *time.Time
}

func scanTime(dst *time.Time) timeColumn {
	return timeColumn{dst: dst}
}

func (c timeColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*c.dst = v
		return nil
	case string:
		return c.parse(v)
	case []byte:
		return c.parse(string(v))
	case nil:
		*c.dst = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (c timeColumn) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*c.dst = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}
