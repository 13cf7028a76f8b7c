package request

// AddLineRequest represents a request to add an item to a table's open order
type AddLineRequest struct {
	TableNo  int    `json:"table_no" binding:"required,min=1"`
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	BatchTag string `json:"batch_tag" binding:"omitempty,max=64"`
}

// UpdateLineRequest represents a request to change a line's quantity
type UpdateLineRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// SettleSelection picks a quantity from one open order line
type SettleSelection struct {
	LineID   string `json:"line_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// SettleRequest represents a partial settlement request for a table
type SettleRequest struct {
	Selections    []SettleSelection `json:"selections" binding:"required,min=1,dive"`
	Discount      float64           `json:"discount" binding:"omitempty,min=0"`
	ServiceCharge bool              `json:"service_charge"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash card upi"`
	Note          string            `json:"note" binding:"omitempty,max=512"`
}

// SettleAllRequest represents a full settlement request for a table
type SettleAllRequest struct {
	Discount      float64 `json:"discount" binding:"omitempty,min=0"`
	ServiceCharge bool    `json:"service_charge"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash card upi"`
	Note          string  `json:"note" binding:"omitempty,max=512"`
}
