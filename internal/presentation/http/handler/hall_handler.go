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

// HallHandler handles hall HTTP requests
type HallHandler struct {
	hallService *service.HallService
}

// NewHallHandler creates a new hall handler
func NewHallHandler(hallService *service.HallService) *HallHandler {
	return &HallHandler{hallService: hallService}
}

// Create handles hall creation
func (h *HallHandler) Create(c *gin.Context) {
	var req request.CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	hall := &entity.Hall{
		ManagerID:   *userID,
		Name:        req.Name,
		Description: req.Description,
		Region:      req.Region,
		Address:     req.Address,
		VATNumber:   req.VATNumber,
		Capacity:    req.Capacity,
		WeekdayRate: req.WeekdayRate,
		WeekendRate: req.WeekendRate,
		IsActive:    true,
	}
	if err := h.hallService.CreateHall(c.Request.Context(), hall); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Hall created successfully", hall)
}

// Get handles retrieving a single hall
func (h *HallHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid hall ID")
		return
	}

	hall, err := h.hallService.GetHall(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Hall retrieved successfully", hall)
}

// Update handles hall updates
func (h *HallHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid hall ID")
		return
	}

	var req request.UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hall, err := h.hallService.GetHall(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Name != nil {
		hall.Name = *req.Name
	}
	if req.Description != nil {
		hall.Description = req.Description
	}
	if req.Region != nil {
		hall.Region = *req.Region
	}
	if req.Address != nil {
		hall.Address = req.Address
	}
	if req.VATNumber != nil {
		hall.VATNumber = req.VATNumber
	}
	if req.Capacity != nil {
		hall.Capacity = *req.Capacity
	}
	if req.WeekdayRate != nil {
		hall.WeekdayRate = *req.WeekdayRate
	}
	if req.WeekendRate != nil {
		hall.WeekendRate = *req.WeekendRate
	}
	if req.IsActive != nil {
		hall.IsActive = *req.IsActive
	}

	if err := h.hallService.UpdateHall(c.Request.Context(), hall); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Hall updated successfully", hall)
}

// Delete handles hall deletion
func (h *HallHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid hall ID")
		return
	}

	if err := h.hallService.DeleteHall(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing halls
func (h *HallHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	halls, total, err := h.hallService.ListHalls(c.Request.Context(), params, c.Query("search"), c.Query("region"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(halls, pagination.NewPagination(page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Halls retrieved successfully", result)
}
