package repositoryImp

import (
	"gorm.io/gorm"

	"agriportal/entities"
	"agriportal/pkg/post/repository"
)

type postRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PostRepository { return &postRepo{db} }

func (r *postRepo) Create(p *entities.Post) error { return r.db.Create(p).Error }

func (r *postRepo) Update(p *entities.Post) error { return r.db.Save(p).Error }

func (r *postRepo) FindByID(id string) (*entities.Post, error) {
	var p entities.Post
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepo) ListWithAuthors() ([]repository.PostWithAuthor, error) {
	var rows []repository.PostWithAuthor
	err := r.db.Table("posts").
		Select("posts.id, posts.user_id, posts.title, posts.content, posts.image_url, posts.tags, posts.created_at, posts.updated_at, users.name AS user_name, users.photo_url AS user_photo_url").
		Joins("LEFT JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *postRepo) CountImages(postID string) (int64, error) {
	var n int64
	err := r.db.Model(&entities.PostImage{}).Where("post_id = ?", postID).Count(&n).Error
	return n, err
}

func (r *postRepo) AddImage(img *entities.PostImage) error { return r.db.Create(img).Error }

func (r *postRepo) ListImages(postIDs []string) ([]entities.PostImage, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var imgs []entities.PostImage
	err := r.db.Where("post_id IN ?", postIDs).Order("created_at").Find(&imgs).Error
	return imgs, err
}

func (r *postRepo) DeleteImages(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&entities.PostImage{}).Error
}

func (r *postRepo) SetCover(postID, imageURL string) error {
	return r.db.Model(&entities.Post{}).Where("id = ?", postID).Update("image_url", imageURL).Error
}
