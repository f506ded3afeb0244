package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/httpresp"
	"github.com/marketops/backoffice/internal/pagination"
	"github.com/marketops/backoffice/internal/services"
)

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req services.CreateContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	contact, err := h.contacts.Create(req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	records, meta, err := h.contacts.List(page, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, records, meta)
}

// Search matches contacts by phone number fragment via the "phone" query.
func (h *ContactHandler) Search(c *gin.Context) {
	records, err := h.contacts.Search(c.Query("phone"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, records)
}

func (h *ContactHandler) GetByUniqueID(c *gin.Context) {
	contact, err := h.contacts.GetByUniqueID(c.Param("uniqueId"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, contact)
}

func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.contacts.Get(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req services.UpdateContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	contact, err := h.contacts.Update(c.Param("id"), req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, contact)
}

func (h *ContactHandler) Remove(c *gin.Context) {
	contact, err := h.contacts.Remove(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, contact)
}
