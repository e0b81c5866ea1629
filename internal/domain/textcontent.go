package domain

import "time"

// TextContent is a key/value pair driving editable site copy. Keys are unique
// and entries are never deleted; a missing key falls back to the client's
// compiled-in default.
type TextContent struct {
	ID        int64     `json:"id" db:"id"`
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type TextContentUpdate struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
