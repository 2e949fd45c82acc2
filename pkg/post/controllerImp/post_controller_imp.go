package controllerImp

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"agriportal/pkg/middleware"
	"agriportal/pkg/post/controller"
	"agriportal/pkg/post/service"
)

type PostCtrl struct{ svc service.PostService }

func New(svc service.PostService) controller.PostController { return &PostCtrl{svc: svc} }

func (h *PostCtrl) List(c echo.Context) error {
	board, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := map[string]any{
		"posts":          board.Posts,
		"available_tags": board.AvailableTags,
	}
	if actor, ok := middleware.ActorFrom(c); ok {
		resp["current_user"] = actor
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PostCtrl) Create(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "requires login"})
	}

	in := service.PostInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		Tags:    c.FormValue("tags"),
		Date:    c.FormValue("date"),
	}
	uploads, closeAll, err := openUploads(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad image upload"})
	}
	defer closeAll()

	p, err := h.svc.Create(actor, in, uploads)
	if err != nil {
		return postError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PostCtrl) Edit(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "requires login"})
	}

	in := service.PostInput{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		Tags:    c.FormValue("tags"),
		Date:    c.FormValue("date"),
	}
	uploads, closeAll, err := openUploads(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad image upload"})
	}
	defer closeAll()

	var deleteIDs []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		deleteIDs = form.Value["deleteImageId"]
	}

	p, err := h.svc.Edit(actor, c.Param("id"), in, uploads, deleteIDs)
	if err != nil {
		return postError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// openUploads pulls the imageFile parts out of the multipart body. A
// request without a multipart body is a valid text-only submission.
func openUploads(c echo.Context) ([]service.ImageUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, func() {}, nil
	}

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	var uploads []service.ImageUpload
	for _, fh := range form.File["imageFile"] {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, f)
		uploads = append(uploads, service.ImageUpload{
			Reader:      f,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
	}
	return uploads, closeAll, nil
}

func postError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrFieldsRequired), errors.Is(err, service.ErrTooManyImages):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
