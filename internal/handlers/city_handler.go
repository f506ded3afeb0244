package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/httpresp"
	"github.com/marketops/backoffice/internal/services"
)

type CityHandler struct {
	cities *services.CityService
}

func NewCityHandler(cities *services.CityService) *CityHandler {
	return &CityHandler{cities: cities}
}

func (h *CityHandler) Create(c *gin.Context) {
	var req services.CreateCityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	city, err := h.cities.Create(req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, city)
}

// List accepts an optional region_id query to narrow the result.
func (h *CityHandler) List(c *gin.Context) {
	cities, err := h.cities.List(c.Query("region_id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cities)
}

func (h *CityHandler) Get(c *gin.Context) {
	city, err := h.cities.Get(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, city)
}

func (h *CityHandler) Update(c *gin.Context) {
	var req services.UpdateCityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	city, err := h.cities.Update(c.Param("id"), req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, city)
}

func (h *CityHandler) Remove(c *gin.Context) {
	city, err := h.cities.Remove(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, city)
}
