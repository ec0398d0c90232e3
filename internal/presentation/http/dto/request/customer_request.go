package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	VATNumber *string `json:"vat_number"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	VATNumber *string `json:"vat_number"`
}
