package request

// ServiceSelectionRequest is one requested vendor service line
type ServiceSelectionRequest struct {
	VendorID      string `json:"vendor_id" binding:"required,uuid"`
	ServiceItemID string `json:"service_item_id" binding:"required,uuid"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
}

// CreateBookingRequest represents a booking creation request.
// Dates use "2006-01-02", times use "HH:MM".
type CreateBookingRequest struct {
	HallID       string                    `json:"hall_id" binding:"required,uuid"`
	CustomerID   string                    `json:"customer_id" binding:"required,uuid"`
	EventDate    string                    `json:"event_date" binding:"required"`
	VisitDate    *string                   `json:"visit_date"`
	StartTime    string                    `json:"start_time" binding:"required"`
	EndTime      string                    `json:"end_time" binding:"required"`
	Services     []ServiceSelectionRequest `json:"services" binding:"dive"`
	DiscountCode string                    `json:"discount_code"`
	Comments     *string                   `json:"comments"`
}

// AvailabilityRequest represents an availability check
type AvailabilityRequest struct {
	HallID    string `form:"hall_id" binding:"required,uuid"`
	Date      string `form:"date" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
	EndTime   string `form:"end_time" binding:"required"`
}

// PayBookingRequest records a completed payment
type PayBookingRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=card bank_transfer cash"`
}
