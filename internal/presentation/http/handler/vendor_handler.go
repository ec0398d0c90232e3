package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/application/service"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/presentation/http/dto/request"
	"github.com/sangkips/venuebook-api/internal/presentation/http/dto/response"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// VendorHandler handles vendor HTTP requests
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Create handles vendor creation
func (h *VendorHandler) Create(c *gin.Context) {
	var req request.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vendor := &entity.Vendor{
		UserID:      GetUserID(c),
		Name:        req.Name,
		ServiceType: req.ServiceType,
		Email:       req.Email,
		Phone:       req.Phone,
		Region:      req.Region,
		IsActive:    true,
	}
	if err := h.vendorService.CreateVendor(c.Request.Context(), vendor); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vendor created successfully", vendor)
}

// Get handles retrieving a single vendor with its service catalog
func (h *VendorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor retrieved successfully", vendor)
}

// Update handles vendor updates
func (h *VendorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ServiceType != nil {
		vendor.ServiceType = *req.ServiceType
	}
	if req.Email != nil {
		vendor.Email = req.Email
	}
	if req.Phone != nil {
		vendor.Phone = req.Phone
	}
	if req.Region != nil {
		vendor.Region = req.Region
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := h.vendorService.UpdateVendor(c.Request.Context(), vendor); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor updated successfully", vendor)
}

// Delete handles vendor deletion
func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing vendors
func (h *VendorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	vendors, total, err := h.vendorService.ListVendors(c.Request.Context(), params, c.Query("search"), c.Query("service_type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(vendors, pagination.NewPagination(page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Vendors retrieved successfully", result)
}

// AddServiceItem adds an item to a vendor's service catalog
func (h *VendorHandler) AddServiceItem(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.CreateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item := &entity.VendorServiceItem{
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		IsActive:    true,
	}
	if err := h.vendorService.AddServiceItem(c.Request.Context(), item); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service item added", item)
}

// UpdateServiceItem updates a vendor catalog item
func (h *VendorHandler) UpdateServiceItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "Invalid service item ID")
		return
	}

	var req request.UpdateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.vendorService.GetServiceItem(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.vendorService.UpdateServiceItem(c.Request.Context(), item); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service item updated", item)
}

// DeleteServiceItem removes a vendor catalog item
func (h *VendorHandler) DeleteServiceItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "Invalid service item ID")
		return
	}

	if err := h.vendorService.DeleteServiceItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListServiceItems returns a vendor's service catalog
func (h *VendorHandler) ListServiceItems(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	items, err := h.vendorService.ListServiceItems(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service items retrieved successfully", items)
}
