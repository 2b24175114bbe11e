package availability

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

// RegisterInterviewerRoutes exposes window submission for invited interviewers.
func (h *Handler) RegisterInterviewerRoutes(rg *gin.RouterGroup) {
	rg.PUT("/booking-requests/:id/availability", h.Submit)
}

// RegisterAdminRoutes exposes the aggregated view per booking request.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking-requests/:id/availability", h.ListByRequest)
}

func (h *Handler) Submit(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking request ID")
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	windows, err := h.service.Submit(c.Request.Context(), requestID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking request not found")
		case errors.Is(err, ErrNotInvited):
			response.Error(c, http.StatusForbidden, "NOT_INVITED", "You are not invited to this booking request")
		case errors.Is(err, ErrRequestClosed):
			response.Error(c, http.StatusConflict, "REQUEST_CLOSED", "Booking request no longer accepts availability")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit availability")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"windows": windows})
}

func (h *Handler) ListByRequest(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking request ID")
		return
	}

	windows, err := h.service.ListByRequest(c.Request.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking request not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list availability")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"windows": windows})
}
