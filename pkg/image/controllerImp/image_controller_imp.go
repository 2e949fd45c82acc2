package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agriportal/pkg/image/store"
)

type ImageCtrl struct{ blobs store.Store }

func New(blobs store.Store) *ImageCtrl { return &ImageCtrl{blobs: blobs} }

// Get streams a stored image by its opaque key.
func (h *ImageCtrl) Get(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "image not found"})
	}
	blob, ct, err := h.blobs.Get(key)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "image not found"})
	}
	defer blob.Close()
	return c.Stream(http.StatusOK, ct, blob)
}
