package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/httpresp"
	"github.com/marketops/backoffice/internal/services"
)

type RegionHandler struct {
	regions *services.RegionService
}

func NewRegionHandler(regions *services.RegionService) *RegionHandler {
	return &RegionHandler{regions: regions}
}

func (h *RegionHandler) Create(c *gin.Context) {
	var req services.CreateRegionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	region, err := h.regions.Create(req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, region)
}

func (h *RegionHandler) List(c *gin.Context) {
	regions, err := h.regions.List(c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, regions)
}

func (h *RegionHandler) Get(c *gin.Context) {
	region, err := h.regions.Get(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, region)
}

func (h *RegionHandler) Update(c *gin.Context) {
	var req services.UpdateRegionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	region, err := h.regions.Update(c.Param("id"), req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, region)
}

func (h *RegionHandler) Remove(c *gin.Context) {
	region, err := h.regions.Remove(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, region)
}
