package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/httpresp"
	"github.com/marketops/backoffice/internal/pagination"
	"github.com/marketops/backoffice/internal/services"
)

type StaffHandler struct {
	staff *services.StaffService
}

func NewStaffHandler(staff *services.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

func (h *StaffHandler) Signup(c *gin.Context) {
	var req services.CreateStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.staff.Signup(req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, result)
}

func (h *StaffHandler) Login(c *gin.Context) {
	var req services.LoginStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.staff.Login(req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, result)
}

func (h *StaffHandler) List(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	records, meta, err := h.staff.List(page, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, records, meta)
}

func (h *StaffHandler) Get(c *gin.Context) {
	staff, err := h.staff.Get(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	var req services.UpdateStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	staff, err := h.staff.Update(c.Param("id"), req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, staff)
}

func (h *StaffHandler) Activate(c *gin.Context) {
	var req services.ActivateStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	staff, err := h.staff.Activate(req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, staff)
}

func (h *StaffHandler) Remove(c *gin.Context) {
	staff, err := h.staff.Remove(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, staff)
}
