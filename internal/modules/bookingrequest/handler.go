package bookingrequest

import (
	"errors"
	"net/http"
	"strconv"

	"interviewdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/booking-requests", h.Create)
	rg.GET("/booking-requests", h.List)
	rg.GET("/booking-requests/:id", h.Get)
	rg.GET("/booking-requests/:id/slots", h.ListSlots)
	rg.POST("/booking-requests/:id/materialize", h.Materialize)
	rg.POST("/booking-requests/:id/collect", h.OverrideCollected)
	rg.POST("/booking-requests/:id/close", h.Close)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	br, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking request")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking_request": br})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking request ID")
		return
	}

	br, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to get booking request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_request": br})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list booking requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking_requests": list})
}

func (h *Handler) ListSlots(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking request ID")
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to list slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) Materialize(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking request ID")
		return
	}

	// Body is optional; an empty one uses the configured slot duration.
	var req MaterializeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	slots, err := h.service.MaterializeSlots(c.Request.Context(), id, req.SlotDurationMinutes)
	if err != nil {
		h.writeError(c, err, "Failed to materialize slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) OverrideCollected(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking request ID")
		return
	}

	br, err := h.service.OverrideCollected(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to advance booking request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_request": br})
}

func (h *Handler) Close(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking request ID")
		return
	}

	br, err := h.service.Close(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to close booking request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_request": br})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking request not found")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Booking request is not in a valid state for this operation")
	case errors.Is(err, ErrNoAvailability):
		response.Error(c, http.StatusConflict, "NO_AVAILABILITY", "No availability windows submitted yet")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
