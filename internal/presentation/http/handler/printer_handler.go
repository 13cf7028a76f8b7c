package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/request"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// List handles listing printers
func (h *PrinterHandler) List(c *gin.Context) {
	printers, err := h.printerService.ListPrinters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printers retrieved successfully", printers)
}

// Get handles retrieving a single printer
func (h *PrinterHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	printer, err := h.printerService.GetPrinter(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printer retrieved successfully", printer)
}

// Create handles printer registration
func (h *PrinterHandler) Create(c *gin.Context) {
	var req request.CreatePrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	printer, err := h.printerService.CreatePrinter(c.Request.Context(), &service.CreatePrinterInput{
		Name:    req.Name,
		Address: req.Address,
		Station: enum.PrinterStation(req.Station),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Printer created successfully", printer)
}

// Update handles printer updates
func (h *PrinterHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdatePrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePrinterInput{
		Name:    req.Name,
		Address: req.Address,
		Active:  req.Active,
	}
	if req.Station != nil {
		station := enum.PrinterStation(*req.Station)
		input.Station = &station
	}

	printer, err := h.printerService.UpdatePrinter(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printer updated successfully", printer)
}

// Delete handles printer removal
func (h *PrinterHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.printerService.DeletePrinter(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printer deleted successfully", nil)
}

// TestPrint queues a short test ticket on the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.printerService.TestPrint(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test print queued", nil)
}
