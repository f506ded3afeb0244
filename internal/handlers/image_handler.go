package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/services"
)

type ImageHandler struct {
	images *services.ImageService
}

func NewImageHandler(images *services.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// Serve streams an image file by name. This route is public; the name is
// validated against path traversal before the disk is touched.
func (h *ImageHandler) Serve(c *gin.Context) {
	path, err := h.images.FilePath(c.Param("imageName"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.File(path)
}
