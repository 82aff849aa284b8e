package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 14
	MaxLimit     = 92
)

// ErrInvalidCursor is returned for cursors that do not decode.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor marks the last row of a page of day-keyed records. Pages are
// ordered by date descending with the row id as tie breaker.
type Cursor struct {
	Date string    `json:"date"`
	ID   uuid.UUID `json:"id"`
}

// Encode encodes the cursor to a base64 string
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor decodes a base64 cursor string. An empty string yields a nil
// cursor and no error.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil || cursor.Date == "" {
		return nil, ErrInvalidCursor
	}

	return &cursor, nil
}

// NormalizeLimit ensures limit is within bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page trims rows fetched with limit+1 down to limit and reports whether
// more rows follow, along with the cursor for the next page.
func Page[T any](rows []T, limit int, cursorOf func(T) Cursor) ([]T, string, bool) {
	limit = NormalizeLimit(limit)
	if len(rows) <= limit {
		return rows, "", false
	}
	rows = rows[:limit]
	next := cursorOf(rows[len(rows)-1])
	return rows, next.Encode(), true
}
