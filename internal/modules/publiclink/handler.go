package publiclink

import (
	"errors"
	"net/http"

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
	rg.POST("/links", h.Create)
	rg.POST("/links/:publicId/allow-list", h.ExtendAllowList)
}

// RegisterPublicRoutes exposes the student-facing slot listing. The identity
// query parameter stands in for authentication on this surface.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/links/:publicId/slots", h.ListAvailableSlots)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	link, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking request not found")
		case errors.Is(err, ErrRequestState):
			response.Error(c, http.StatusConflict, "INVALID_STATE", "Booking request cannot be published yet")
		case errors.Is(err, ErrNoSlots):
			response.Error(c, http.StatusConflict, "NO_SLOTS", "Materialize slots before publishing a link")
		case errors.Is(err, ErrUnknownSlot):
			response.Error(c, http.StatusBadRequest, "UNKNOWN_SLOT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create public link")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"link": link})
}

func (h *Handler) ExtendAllowList(c *gin.Context) {
	var req ExtendAllowListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	size, err := h.service.ExtendAllowList(c.Request.Context(), c.Param("publicId"), req.Identities)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Public link not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to extend allow-list")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"allow_list_size": size})
}

func (h *Handler) ListAvailableSlots(c *gin.Context) {
	identity := c.Query("identity")
	if identity == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "identity query parameter is required")
		return
	}

	slots, err := h.service.ListAvailableSlots(c.Request.Context(), c.Param("publicId"), identity)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown public link")
		case errors.Is(err, ErrNotAuthorized):
			response.Error(c, http.StatusForbidden, "NOT_AUTHORIZED", "Identity is not authorized for this link")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list slots")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}
