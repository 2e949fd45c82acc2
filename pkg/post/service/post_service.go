package service

import (
	"errors"
	"io"

	"agriportal/entities"
	"agriportal/pkg/post/repository"
)

const (
	// DefaultTag is substituted when a post is created without tags.
	DefaultTag = "#農業活動"
	// MaxImagesPerPost caps stored plus incoming attachments.
	MaxImagesPerPost = 5
)

var (
	ErrNotFound       = errors.New("post not found")
	ErrForbidden      = errors.New("forbidden")
	ErrFieldsRequired = errors.New("title and content are required")
	ErrTooManyImages  = errors.New("too many images: up to 5 per post")
)

// PostInput carries the text fields of a create/edit submission.
type PostInput struct {
	Title   string
	Content string
	Tags    string
	Date    string // YYYY-MM-DD; overrides the creation date when set
}

// ImageUpload is one incoming attachment. Zero-size uploads are skipped.
type ImageUpload struct {
	Reader      io.Reader
	ContentType string
	Size        int64
}

// PostView is a post as rendered on the board.
type PostView struct {
	repository.PostWithAuthor
	Images []entities.PostImage `json:"images"`
}

// BoardData is the community page payload: posts newest first plus the
// tag facet recomputed from every post's tag field.
type BoardData struct {
	Posts         []PostView `json:"posts"`
	AvailableTags []string   `json:"available_tags"`
}

type PostService interface {
	List() (*BoardData, error)
	Create(actor entities.Actor, in PostInput, images []ImageUpload) (*entities.Post, error)
	Edit(actor entities.Actor, postID string, in PostInput, images []ImageUpload, deleteImageIDs []string) (*entities.Post, error)
}
