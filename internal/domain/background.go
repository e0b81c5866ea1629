package domain

import "time"

const (
	SectionTypeServices  = "services"
	SectionTypePortfolio = "portfolio"
)

// BackgroundImage binds one image to a named UI section. At most one row
// exists per (section_type, section_name) pair.
type BackgroundImage struct {
	ID                 int64     `json:"id" db:"id"`
	SectionType        string    `json:"sectionType" db:"section_type"`
	SectionName        string    `json:"sectionName" db:"section_name"`
	BackgroundImageURL string    `json:"backgroundImageUrl" db:"background_image_url"`
	FileName           string    `json:"fileName" db:"file_name"`
	FileSize           int64     `json:"fileSize" db:"file_size"`
	MimeType           string    `json:"mimeType" db:"mime_type"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

func ValidSectionType(t string) bool {
	return t == SectionTypeServices || t == SectionTypePortfolio
}
