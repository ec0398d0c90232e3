package request

// HallDecisionRequest is the hall manager's decision on a booking
type HallDecisionRequest struct {
	Approved        bool    `json:"approved"`
	RejectionReason *string `json:"rejection_reason"`
}

// VendorDecisionRequest is one vendor's decision on its vendor booking
type VendorDecisionRequest struct {
	Approved        bool    `json:"approved"`
	RejectionReason *string `json:"rejection_reason"`
}

// CancelInvoiceRequest annotates an invoice cancellation
type CancelInvoiceRequest struct {
	Reason string `json:"reason" binding:"required,min=3"`
}
