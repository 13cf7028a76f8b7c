package request

// CreatePrinterRequest represents a printer registration request
type CreatePrinterRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Address string `json:"address" binding:"required,hostname_port"`
	Station string `json:"station" binding:"required,oneof=kitchen bar receipt"`
}

// UpdatePrinterRequest represents a printer update request
type UpdatePrinterRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Address *string `json:"address" binding:"omitempty,hostname_port"`
	Station *string `json:"station" binding:"omitempty,oneof=kitchen bar receipt"`
	Active  *bool   `json:"active"`
}
