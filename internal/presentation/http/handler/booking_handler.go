package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/application/service"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/internal/presentation/http/dto/request"
	"github.com/sangkips/venuebook-api/internal/presentation/http/dto/response"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// BookingHandler handles booking HTTP requests, including the
// approval workflow endpoints.
type BookingHandler struct {
	bookingService  *service.BookingService
	approvalService *service.ApprovalService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService, approvalService *service.ApprovalService) *BookingHandler {
	return &BookingHandler{
		bookingService:  bookingService,
		approvalService: approvalService,
	}
}

// Create handles booking creation
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hallID, _ := uuid.Parse(req.HallID)
	customerID, _ := uuid.Parse(req.CustomerID)

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		response.BadRequest(c, "event_date must be in YYYY-MM-DD format")
		return
	}

	input := &service.CreateBookingInput{
		HallID:       hallID,
		CustomerID:   customerID,
		EventDate:    eventDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		DiscountCode: req.DiscountCode,
		Comments:     req.Comments,
	}

	if req.VisitDate != nil {
		visitDate, err := time.Parse("2006-01-02", *req.VisitDate)
		if err != nil {
			response.BadRequest(c, "visit_date must be in YYYY-MM-DD format")
			return
		}
		input.VisitDate = &visitDate
	}

	for _, s := range req.Services {
		vendorID, _ := uuid.Parse(s.VendorID)
		serviceItemID, _ := uuid.Parse(s.ServiceItemID)
		input.Selections = append(input.Selections, service.ServiceSelection{
			VendorID:      vendorID,
			ServiceItemID: serviceItemID,
			Quantity:      s.Quantity,
		})
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Booking created successfully", booking)
}

// Get handles retrieving a single booking with details
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking retrieved successfully", booking)
}

// List handles listing bookings with filters
func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.BookingFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := enum.ParseBookingStatus(statusStr)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}

	if hallIDStr := c.Query("hall_id"); hallIDStr != "" {
		if hallID, err := uuid.Parse(hallIDStr); err == nil {
			params.HallID = &hallID
		}
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(bookings, pagination.NewPagination(page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Bookings retrieved successfully", result)
}

// CheckAvailability handles hall availability checks
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req request.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hallID, _ := uuid.Parse(req.HallID)
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "date must be in YYYY-MM-DD format")
		return
	}

	result, err := h.bookingService.CheckAvailability(c.Request.Context(), hallID, date, req.StartTime, req.EndTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Availability checked", result)
}

// HallDecision records the hall manager's approval or rejection
func (h *BookingHandler) HallDecision(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req request.HallDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.approvalService.ApproveHall(c.Request.Context(), id, req.Approved, req.RejectionReason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, result)
}

// VendorDecision records one vendor's approval or rejection
func (h *BookingHandler) VendorDecision(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	vendorBookingID, err := uuid.Parse(c.Param("vendor_booking_id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor booking ID")
		return
	}

	var req request.VendorDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.approvalService.RespondVendor(c.Request.Context(), id, vendorBookingID, req.Approved, req.RejectionReason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, result)
}

// VendorStatus reports the vendor approval progress of a booking
func (h *BookingHandler) VendorStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	summary, err := h.approvalService.VendorApprovalStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor approval status retrieved", summary)
}

// Pay records a completed payment on a booking
func (h *BookingHandler) Pay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req request.PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.approvalService.MarkPaid(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, result)
}

// Confirm finalizes a booking and triggers invoice generation
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	result, err := h.approvalService.Confirm(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Booking confirmed"
	if result.InvoiceErr != nil {
		message = "Booking confirmed, invoice generation pending"
	}
	response.OK(c, message, result)
}

// Cancel cancels a booking
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	result, err := h.approvalService.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, result)
}
