package entities

import (
	"time"
)

// PlaceholderImageURL is shown whenever a recipe has neither an uploaded
// image nor an external image URL.
const PlaceholderImageURL = "https://via.placeholder.com/150?text=No+Image"

type Recipe struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;uniqueIndex;not null" json:"title"`
	Image       string `gorm:"size:500" json:"image,omitempty"` // object key of the uploaded image
	ImageURL    string `gorm:"size:500" json:"image_url,omitempty"`
	Ingredients string `gorm:"type:text;not null" json:"ingredients"`
	Steps       string `gorm:"type:text;not null" json:"steps"`

	Timestamp
}

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

func (r *Recipe) String() string {
	return r.Title
}

// HasStoredImage reports whether an uploaded image takes precedence over
// the external ImageURL.
func (r *Recipe) HasStoredImage() bool {
	return r.Image != ""
}
