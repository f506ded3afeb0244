package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/httpresp"
	"github.com/marketops/backoffice/internal/pagination"
	"github.com/marketops/backoffice/internal/services"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	order, err := h.orders.Create(req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	records, meta, err := h.orders.List(page, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, records, meta)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	var req services.UpdateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	order, err := h.orders.Update(c.Param("id"), req, c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, order)
}

func (h *OrderHandler) Remove(c *gin.Context) {
	order, err := h.orders.Remove(c.Param("id"), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, order)
}
