package domain

import "time"

const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
	MediaTypeReel  = "reel"
)

// MediaItem is one uploaded portfolio photo or video. FileURL always points at
// a live object in blob storage for as long as the row exists.
type MediaItem struct {
	ID         string    `json:"id" db:"id"`
	FileName   string    `json:"file_name" db:"file_name"`
	FileURL    string    `json:"file_url" db:"file_url"`
	Title      string    `json:"title" db:"title"`
	Caption    string    `json:"caption" db:"caption"`
	Category   string    `json:"category" db:"category"`
	MediaType  string    `json:"media_type" db:"media_type"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
	FileSize   int64     `json:"file_size" db:"file_size"`
	MimeType   string    `json:"mime_type" db:"mime_type"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateMediaInput carries the mutable fields only. Upload-derived metadata
// (file name, url, size, mime type) is not updatable.
type UpdateMediaInput struct {
	Title     *string `json:"title,omitempty"`
	Caption   *string `json:"caption,omitempty"`
	Category  *string `json:"category,omitempty"`
	MediaType *string `json:"media_type,omitempty"`
}

func ValidMediaType(t string) bool {
	return t == MediaTypePhoto || t == MediaTypeVideo || t == MediaTypeReel
}
