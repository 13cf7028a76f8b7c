package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/request"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
)

// OrderHandler handles open order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOpen handles listing all open orders
func (h *OrderHandler) ListOpen(c *gin.Context) {
	orders, err := h.orderService.ListOpen(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Open orders retrieved successfully", orders)
}

// GetByTable handles retrieving a table's open order with its lines
func (h *OrderHandler) GetByTable(c *gin.Context) {
	tableNo, ok := parseTableParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetByTable(c.Request.Context(), tableNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// AddLine handles adding an item to a table's open order
func (h *OrderHandler) AddLine(c *gin.Context) {
	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	itemID, err := parseUUIDBody(c, req.ItemID, "item_id")
	if err != nil {
		return
	}

	order, err := h.orderService.AddLine(c.Request.Context(), &service.AddLineInput{
		TableNo:  req.TableNo,
		ItemID:   itemID,
		Quantity: req.Quantity,
		BatchTag: req.BatchTag,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line added successfully", order)
}

// UpdateLine handles changing an order line's quantity
func (h *OrderHandler) UpdateLine(c *gin.Context) {
	lineID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateLineQuantity(c.Request.Context(), lineID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line updated successfully", order)
}

// RemoveLine handles removing an order line
func (h *OrderHandler) RemoveLine(c *gin.Context) {
	lineID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.RemoveLine(c.Request.Context(), lineID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line removed successfully", nil)
}
