package interviewer

import (
	"errors"
	"net/http"
	"strconv"

	"interviewdesk/internal/pkg/response"
	"interviewdesk/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/interviewers", h.Create)
	rg.GET("/interviewers", h.List)
	rg.GET("/interviewers/:id", h.Get)
	rg.PATCH("/interviewers/:id", h.Update)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if verrs := validator.Validate(&req); verrs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid interviewer fields", verrs)
		return
	}

	iv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create interviewer")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"interviewer": iv})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid interviewer ID")
		return
	}

	iv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Interviewer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get interviewer")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interviewer": iv})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, ErrBadStatus) {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown interviewer status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list interviewers")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interviewers": list})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid interviewer ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	iv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Interviewer not found")
		case errors.Is(err, ErrBadStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown interviewer status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update interviewer")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interviewer": iv})
}
