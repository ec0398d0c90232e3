package request

// CreateVendorRequest represents a vendor creation request
type CreateVendorRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	ServiceType string  `json:"service_type" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Region      *string `json:"region"`
}

// UpdateVendorRequest represents a vendor update request
type UpdateVendorRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	ServiceType *string `json:"service_type"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Region      *string `json:"region"`
	IsActive    *bool   `json:"is_active"`
}

// CreateServiceItemRequest adds a service item to a vendor's catalog
type CreateServiceItemRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
	UnitPrice   float64 `json:"unit_price" binding:"min=0"`
}

// UpdateServiceItemRequest updates a vendor catalog item
type UpdateServiceItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unit_price" binding:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active"`
}
