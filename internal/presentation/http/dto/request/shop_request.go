package request

// UpdateShopRequest represents a shop profile update request
type UpdateShopRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	Address       *string `json:"address" binding:"omitempty,max=512"`
	Phone         *string `json:"phone" binding:"omitempty,max=32"`
	TaxID         *string `json:"tax_id" binding:"omitempty,max=64"`
	Currency      *string `json:"currency" binding:"omitempty,max=8"`
	ReceiptFooter *string `json:"receipt_footer" binding:"omitempty,max=512"`
}
