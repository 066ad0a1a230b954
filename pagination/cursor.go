// Package pagination implements opaque cursor-based pagination over ordered
// in-memory sequences.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

const (
	// DefaultLimit is the page size applied when the caller does not ask
	// for one
	DefaultLimit = 20
	// MaxLimit is the hard ceiling on page size
	MaxLimit = 100
)

// cursorPayload is the wire shape of a cursor: base64 of {"id": <case
// number>}. External consumers decode cursors directly, so this shape must
// not change.
type cursorPayload struct {
	ID string `json:"id"`
}

var errMalformedCursor = errors.New("malformed cursor")

// EncodeCursor packs a case number into an opaque cursor token
func EncodeCursor(id string) string {
	b, _ := json.Marshal(cursorPayload{ID: id})
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeCursor unpacks a cursor token back into the case number it encodes
func DecodeCursor(cursor string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return "", errMalformedCursor
	}
	var payload cursorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", errMalformedCursor
	}
	return payload.ID, nil
}

// Paginate slices one page out of items, resuming after the element whose
// key matches the decoded cursor. A malformed cursor, or one pointing at an
// element no longer in the sequence, silently restarts from the beginning —
// pagination never errors. The returned cursor is nil when the page reaches
// the end of the sequence.
func Paginate[T any](items []T, key func(T) string, cursor string, limit int) ([]T, *string) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	start := 0
	if cursor != "" {
		if id, err := DecodeCursor(cursor); err == nil {
			for i, item := range items {
				if key(item) == id {
					start = i + 1
					break
				}
			}
		}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	page := items[start:end]

	if end >= len(items) || len(page) == 0 {
		return page, nil
	}
	next := EncodeCursor(key(page[len(page)-1]))
	return page, &next
}
