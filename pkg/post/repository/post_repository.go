package repository

import (
	"time"

	"agriportal/entities"
)

// PostWithAuthor is a post row joined with its author's display data.
type PostWithAuthor struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"image_url"`
	Tags         string    `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserName     string    `json:"user_name"`
	UserPhotoURL string    `json:"user_photo_url"`
}

type PostRepository interface {
	Create(p *entities.Post) error
	Update(p *entities.Post) error
	FindByID(id string) (*entities.Post, error)
	ListWithAuthors() ([]PostWithAuthor, error)

	CountImages(postID string) (int64, error)
	AddImage(img *entities.PostImage) error
	ListImages(postIDs []string) ([]entities.PostImage, error)
	DeleteImages(ids []string) error
	SetCover(postID, imageURL string) error
}
