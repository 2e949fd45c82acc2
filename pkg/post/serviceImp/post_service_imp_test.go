package serviceImp

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agriportal/database"
	"agriportal/entities"
	"agriportal/pkg/image/storeImp"
	"agriportal/pkg/post/repository"
	"agriportal/pkg/post/repositoryImp"
	"agriportal/pkg/post/service"
)

func newTestService(t *testing.T) (service.PostService, repository.PostRepository, *gorm.DB) {
	t.Helper()
	dir := t.TempDir()
	db := database.OpenSQLite(filepath.Join(dir, "test.db"))
	blobs, err := storeImp.New(filepath.Join(dir, "images"))
	require.NoError(t, err)
	repo := repositoryImp.New(db)
	return New(repo, blobs), repo, db
}

func seedUser(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	require.NoError(t, db.Create(&entities.User{ID: id, Email: id + "@example.com", Name: name}).Error)
}

func upload(content string) service.ImageUpload {
	return service.ImageUpload{Reader: strings.NewReader(content), ContentType: "image/png", Size: int64(len(content))}
}

func TestCreateRequiresTitleAndContent(t *testing.T) {
	svc, _, _ := newTestService(t)
	actor := entities.Actor{ID: "u1"}

	_, err := svc.Create(actor, service.PostInput{Title: "  ", Content: "body"}, nil)
	assert.ErrorIs(t, err, service.ErrFieldsRequired)

	_, err = svc.Create(actor, service.PostInput{Title: "t", Content: ""}, nil)
	assert.ErrorIs(t, err, service.ErrFieldsRequired)
}

func TestCreateSubstitutesDefaultTag(t *testing.T) {
	svc, repo, _ := newTestService(t)

	p, err := svc.Create(entities.Actor{ID: "u1"}, service.PostInput{Title: "t", Content: "c"}, nil)
	require.NoError(t, err)

	got, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, service.DefaultTag, got.Tags)
}

func TestCreateStoresImagesAndCover(t *testing.T) {
	svc, repo, _ := newTestService(t)

	p, err := svc.Create(entities.Actor{ID: "u1"},
		service.PostInput{Title: "t", Content: "c", Tags: "#梨"},
		[]service.ImageUpload{upload("one"), upload("two"), {Reader: strings.NewReader(""), Size: 0}})
	require.NoError(t, err)

	imgs, err := repo.ListImages([]string{p.ID})
	require.NoError(t, err)
	require.Len(t, imgs, 2) // empty file skipped

	got, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ImageURL)
	assert.Equal(t, imgs[0].ImageURL, got.ImageURL, "cover is the first stored image")
	assert.True(t, strings.HasPrefix(got.ImageURL, "/images/"))
}

func TestCreateEmptyFirstSlotLeavesCoverUnset(t *testing.T) {
	svc, repo, _ := newTestService(t)

	p, err := svc.Create(entities.Actor{ID: "u1"},
		service.PostInput{Title: "t", Content: "c"},
		[]service.ImageUpload{{Reader: strings.NewReader(""), Size: 0}, upload("two")})
	require.NoError(t, err)

	imgs, err := repo.ListImages([]string{p.ID})
	require.NoError(t, err)
	require.Len(t, imgs, 1)

	got, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ImageURL, "cover only comes from the first upload slot")
}

func TestCreateHonorsUserDate(t *testing.T) {
	svc, repo, _ := newTestService(t)

	p, err := svc.Create(entities.Actor{ID: "u1"}, service.PostInput{Title: "t", Content: "c", Date: "2026-04-01"}, nil)
	require.NoError(t, err)

	got, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-04-01", got.CreatedAt.Format("2006-01-02"))
}

func TestImageCeiling(t *testing.T) {
	svc, repo, _ := newTestService(t)
	actor := entities.Actor{ID: "u1"}

	p, err := svc.Create(actor, service.PostInput{Title: "t", Content: "c"},
		[]service.ImageUpload{upload("1"), upload("2"), upload("3"), upload("4")})
	require.NoError(t, err)

	edit := service.PostInput{Title: "t", Content: "c"}

	// 4 stored + 2 incoming exceeds the ceiling; nothing stored
	_, err = svc.Edit(actor, p.ID, edit, []service.ImageUpload{upload("5"), upload("6")}, nil)
	assert.ErrorIs(t, err, service.ErrTooManyImages)
	n, _ := repo.CountImages(p.ID)
	assert.EqualValues(t, 4, n)

	// 4 + 1 fits exactly
	_, err = svc.Edit(actor, p.ID, edit, []service.ImageUpload{upload("5")}, nil)
	require.NoError(t, err)
	n, _ = repo.CountImages(p.ID)
	assert.EqualValues(t, 5, n)

	// post is full now
	_, err = svc.Edit(actor, p.ID, edit, []service.ImageUpload{upload("6")}, nil)
	assert.ErrorIs(t, err, service.ErrTooManyImages)
	n, _ = repo.CountImages(p.ID)
	assert.EqualValues(t, 5, n)
}

func TestEditAuthorization(t *testing.T) {
	svc, repo, _ := newTestService(t)

	p, err := svc.Create(entities.Actor{ID: "author"}, service.PostInput{Title: "t", Content: "c", Tags: "#a"}, nil)
	require.NoError(t, err)
	before, err := repo.FindByID(p.ID)
	require.NoError(t, err)

	_, err = svc.Edit(entities.Actor{ID: "stranger"}, p.ID,
		service.PostInput{Title: "hacked", Content: "hacked"}, nil, nil)
	assert.ErrorIs(t, err, service.ErrForbidden)

	after, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Content, after.Content)
	assert.Equal(t, before.Tags, after.Tags)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestEditByAdminAllowed(t *testing.T) {
	svc, repo, _ := newTestService(t)

	p, err := svc.Create(entities.Actor{ID: "author"}, service.PostInput{Title: "t", Content: "c"}, nil)
	require.NoError(t, err)

	_, err = svc.Edit(entities.Actor{ID: "admin", IsAdmin: true}, p.ID,
		service.PostInput{Title: "fixed", Content: "c", Tags: "#a"}, nil, nil)
	require.NoError(t, err)

	got, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.Title)
}

func TestEditMissingPost(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Edit(entities.Actor{ID: "u1"}, "no-such-id",
		service.PostInput{Title: "t", Content: "c"}, nil, nil)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestEditDeletesSelectedImages(t *testing.T) {
	svc, repo, _ := newTestService(t)
	actor := entities.Actor{ID: "u1"}

	p, err := svc.Create(actor, service.PostInput{Title: "t", Content: "c"},
		[]service.ImageUpload{upload("1"), upload("2")})
	require.NoError(t, err)

	imgs, err := repo.ListImages([]string{p.ID})
	require.NoError(t, err)
	require.Len(t, imgs, 2)

	_, err = svc.Edit(actor, p.ID, service.PostInput{Title: "t", Content: "c"}, nil, []string{imgs[0].ID})
	require.NoError(t, err)

	left, err := repo.ListImages([]string{p.ID})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, imgs[1].ID, left[0].ID)
}

func TestListJoinsAuthorsAndBuildsFacet(t *testing.T) {
	svc, _, db := newTestService(t)
	seedUser(t, db, "u1", "農家太郎")

	_, err := svc.Create(entities.Actor{ID: "u1"}, service.PostInput{Title: "a", Content: "c", Tags: "#梨 #剪定"}, nil)
	require.NoError(t, err)
	_, err = svc.Create(entities.Actor{ID: "ghost"}, service.PostInput{Title: "b", Content: "c", Tags: "#スイカ,肥料"}, nil)
	require.NoError(t, err)

	board, err := svc.List()
	require.NoError(t, err)
	require.Len(t, board.Posts, 2)

	names := map[string]string{}
	for _, p := range board.Posts {
		names[p.Title] = p.UserName
	}
	assert.Equal(t, "農家太郎", names["a"])
	assert.Equal(t, "不明なユーザー", names["b"], "missing author falls back")

	assert.Equal(t, []string{"#スイカ", "#剪定", "#梨"}, board.AvailableTags)
}
