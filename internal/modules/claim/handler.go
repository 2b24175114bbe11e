package claim

import (
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

// RegisterPublicRoutes exposes the student-facing claim endpoint. Students
// are authorized by the allow-list, not by session.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/links/:publicId/slots/:slotId/claim", h.ClaimSlot)
}

// RegisterAdminRoutes exposes cancellation and the projection feed.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/bookings", h.ListBookings)
}

func (h *Handler) ClaimSlot(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	booking, err := h.service.ClaimSlot(c.Request.Context(), c.Param("publicId"), c.Param("slotId"), req.Identity)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown public link")
		case ErrLinkClosed:
			response.Error(c, http.StatusGone, "LINK_CLOSED", "This booking link is closed")
		case ErrNotAuthorized:
			response.Error(c, http.StatusForbidden, "NOT_AUTHORIZED", "Identity is not authorized for this link")
		case ErrAlreadyBooked:
			response.Error(c, http.StatusConflict, "ALREADY_BOOKED", "Identity already holds a confirmed booking")
		case ErrSlotUnavailable:
			response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "Slot is no longer available, pick another")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to claim slot")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": booking})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	booking, err := h.service.CancelBooking(c.Request.Context(), id, req.ReleaseSlot)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) ListBookings(c *gin.Context) {
	since, _ := strconv.ParseInt(c.DefaultQuery("since", "0"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	bookings, err := h.service.ListBookings(c.Request.Context(), since, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	cursor := since
	if len(bookings) > 0 {
		cursor = bookings[len(bookings)-1].ID
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings, "cursor": cursor})
}
