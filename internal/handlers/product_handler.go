package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/httpresp"
	"github.com/marketops/backoffice/internal/pagination"
	"github.com/marketops/backoffice/internal/services"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create consumes a multipart form: scalar fields plus zero or more files
// under the "images" key.
func (h *ProductHandler) Create(c *gin.Context) {
	var req services.CreateProductInput
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	files, err := readUploads(c, "images")
	if err != nil {
		bindError(c, err)
		return
	}

	product, err := h.products.Create(req, files, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	records, meta, err := h.products.List(page, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, records, meta)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req services.UpdateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	product, err := h.products.Update(c.Param("id"), req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, product)
}

func (h *ProductHandler) Remove(c *gin.Context) {
	product, err := h.products.Remove(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, product)
}

// readUploads collects the bytes of every file posted under field. A request
// without the field yields an empty slice.
func readUploads(c *gin.Context, field string) ([][]byte, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	headers := form.File[field]
	files := make([][]byte, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, data)
	}
	return files, nil
}
