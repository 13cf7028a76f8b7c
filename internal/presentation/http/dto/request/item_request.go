package request

// CreateItemRequest represents a menu item creation request
type CreateItemRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required,oneof=kot bot"`
	SubcategoryID *string `json:"subcategory_id" binding:"omitempty,uuid"`
}

// UpdateItemRequest represents a menu item update request
type UpdateItemRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	Category      *string  `json:"category" binding:"omitempty,oneof=kot bot"`
	SubcategoryID *string  `json:"subcategory_id" binding:"omitempty,uuid"`
	Active        *bool    `json:"active"`
}

// SubcategoryRequest represents a subcategory create or rename request
type SubcategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
