package serviceImp

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agriportal/entities"
	"agriportal/pkg/image/store"
	"agriportal/pkg/post/repository"
	"agriportal/pkg/post/service"
	"agriportal/pkg/tags"
)

type postService struct {
	repo  repository.PostRepository
	blobs store.Store
}

func New(repo repository.PostRepository, blobs store.Store) service.PostService {
	return &postService{repo: repo, blobs: blobs}
}

// Authorize allows mutation by the post's author or an administrator.
func Authorize(actor entities.Actor, post *entities.Post) error {
	if actor.ID == post.UserID || actor.IsAdmin {
		return nil
	}
	return service.ErrForbidden
}

func (s *postService) List() (*service.BoardData, error) {
	rows, err := s.repo.ListWithAuthors()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	tagFields := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
		tagFields = append(tagFields, r.Tags)
	}
	imgs, err := s.repo.ListImages(ids)
	if err != nil {
		return nil, err
	}
	byPost := map[string][]entities.PostImage{}
	for _, img := range imgs {
		byPost[img.PostID] = append(byPost[img.PostID], img)
	}

	views := make([]service.PostView, 0, len(rows))
	for _, r := range rows {
		if r.UserName == "" {
			r.UserName = "不明なユーザー"
		}
		views = append(views, service.PostView{PostWithAuthor: r, Images: byPost[r.ID]})
	}
	return &service.BoardData{Posts: views, AvailableTags: tags.Facet(tagFields)}, nil
}

func (s *postService) Create(actor entities.Actor, in service.PostInput, images []service.ImageUpload) (*entities.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, service.ErrFieldsRequired
	}

	tagField := in.Tags
	if tagField == "" {
		tagField = service.DefaultTag
	}

	p := &entities.Post{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		Title:     title,
		Content:   content,
		Tags:      tagField,
		CreatedAt: postDate(in.Date),
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}

	if err := s.storeImages(p, images, true); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *postService) Edit(actor entities.Actor, postID string, in service.PostInput, images []service.ImageUpload, deleteImageIDs []string) (*entities.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, service.ErrFieldsRequired
	}

	p, err := s.repo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	// must hold before anything is written
	if err := Authorize(actor, p); err != nil {
		return nil, err
	}

	p.Title = title
	p.Content = content
	p.Tags = in.Tags
	if in.Date != "" {
		p.CreatedAt = postDate(in.Date)
	}
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}

	// post-level authorization already covers the attachments
	if err := s.repo.DeleteImages(deleteImageIDs); err != nil {
		return nil, err
	}

	if err := s.storeImages(p, images, false); err != nil {
		return nil, err
	}
	return p, nil
}

// storeImages enforces the attachment ceiling against the stored count,
// then uploads each non-empty file under a fresh key. The loop is not
// compensated: a mid-loop failure leaves earlier uploads committed.
func (s *postService) storeImages(p *entities.Post, images []service.ImageUpload, firstIsCover bool) error {
	incoming := 0
	for _, img := range images {
		if img.Size > 0 {
			incoming++
		}
	}
	if incoming == 0 {
		return nil
	}

	current, err := s.repo.CountImages(p.ID)
	if err != nil {
		return err
	}
	if current+int64(incoming) > service.MaxImagesPerPost {
		return service.ErrTooManyImages
	}

	for i, img := range images {
		if img.Size <= 0 {
			continue
		}
		key := uuid.NewString()
		if err := s.blobs.Put(key, img.Reader, img.ContentType); err != nil {
			return err
		}
		url := "/images/" + key
		if err := s.repo.AddImage(&entities.PostImage{ID: uuid.NewString(), PostID: p.ID, ImageURL: url}); err != nil {
			return err
		}
		// The cover comes from the first upload slot only; an empty
		// first slot leaves the cover unset.
		if firstIsCover && i == 0 {
			if err := s.repo.SetCover(p.ID, url); err != nil {
				return err
			}
			p.ImageURL = url
		}
	}
	return nil
}

// postDate parses the user-adjustable creation date, falling back to
// now on empty or malformed input.
func postDate(date string) time.Time {
	if date == "" {
		return time.Now()
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Now()
	}
	return d
}
