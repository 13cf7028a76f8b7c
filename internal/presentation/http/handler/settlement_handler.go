package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/request"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
)

// SettlementHandler handles settlement HTTP requests
type SettlementHandler struct {
	settlementService *service.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// Settle handles partial settlement of a table's open order
func (h *SettlementHandler) Settle(c *gin.Context) {
	tableNo, ok := parseTableParam(c)
	if !ok {
		return
	}

	var req request.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	selections := make([]service.Selection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		lineID, err := uuid.Parse(sel.LineID)
		if err != nil {
			response.BadRequest(c, "Invalid line_id")
			return
		}
		selections = append(selections, service.Selection{
			LineID:   lineID,
			Quantity: sel.Quantity,
		})
	}

	bill, err := h.settlementService.Settle(c.Request.Context(), &service.SettleInput{
		TableNo:       tableNo,
		Selections:    selections,
		Discount:      req.Discount,
		ServiceCharge: req.ServiceCharge,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Note:          req.Note,
		SettledByID:   GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order settled successfully", bill)
}

// SettleAll handles full settlement of a table's open order
func (h *SettlementHandler) SettleAll(c *gin.Context) {
	tableNo, ok := parseTableParam(c)
	if !ok {
		return
	}

	var req request.SettleAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.settlementService.SettleAll(c.Request.Context(), &service.SettleInput{
		TableNo:       tableNo,
		Discount:      req.Discount,
		ServiceCharge: req.ServiceCharge,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Note:          req.Note,
		SettledByID:   GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order settled successfully", bill)
}
