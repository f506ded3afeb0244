package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/httpresp"
	"github.com/marketops/backoffice/internal/services"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req services.CreateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	category, err := h.categories.Create(req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.Get(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req services.UpdateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	category, err := h.categories.Update(c.Param("id"), req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, category)
}

func (h *CategoryHandler) Remove(c *gin.Context) {
	category, err := h.categories.Remove(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, category)
}
