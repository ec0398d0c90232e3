package request

// CreateHallRequest represents a hall creation request
type CreateHallRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
	Region      string  `json:"region" binding:"required"`
	Address     *string `json:"address"`
	VATNumber   *string `json:"vat_number"`
	Capacity    int     `json:"capacity" binding:"min=0"`
	WeekdayRate float64 `json:"weekday_rate" binding:"min=0"`
	WeekendRate float64 `json:"weekend_rate" binding:"min=0"`
}

// UpdateHallRequest represents a hall update request
type UpdateHallRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string  `json:"description"`
	Region      *string  `json:"region"`
	Address     *string  `json:"address"`
	VATNumber   *string  `json:"vat_number"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=0"`
	WeekdayRate *float64 `json:"weekday_rate" binding:"omitempty,min=0"`
	WeekendRate *float64 `json:"weekend_rate" binding:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active"`
}
