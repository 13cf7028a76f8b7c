package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/request"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
)

// ShopHandler handles shop profile HTTP requests
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Get handles retrieving the shop profile
func (h *ShopHandler) Get(c *gin.Context) {
	shop, err := h.shopService.GetShop(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop retrieved successfully", shop)
}

// Update handles updating the shop profile
func (h *ShopHandler) Update(c *gin.Context) {
	var req request.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), &service.UpdateShopInput{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		TaxID:         req.TaxID,
		Currency:      req.Currency,
		ReceiptFooter: req.ReceiptFooter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop updated successfully", shop)
}
