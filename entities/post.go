package entities

import "time"

type Post struct {
	ID      string `gorm:"primaryKey" json:"id"` // UUID
	UserID  string `gorm:"index" json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	// ImageURL is the cover image kept for single-image display.
	// The full attachment list lives in post_images.
	ImageURL string `json:"image_url"`
	Tags     string `json:"tags"` // free text, e.g. "#梨 #剪定"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostImage struct {
	ID       string `gorm:"primaryKey" json:"id"` // UUID
	PostID   string `gorm:"index" json:"post_id"`
	ImageURL string `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}
