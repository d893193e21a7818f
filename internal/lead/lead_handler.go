package lead

import (
	"net/http"
	"strconv"

	leaderrors "bizdash/internal/lead/errors"
	"bizdash/internal/shared/apperror"
	"bizdash/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.ErrorText, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	row, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Lead added successfully",
		"leadId":  row.ID,
		"lead":    row,
	})
}

func (h *Handler) GetGroupedContacts(c *gin.Context) {
	grouped, err := h.service.GetGroupedContacts(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grouped)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeServiceError(c, leaderrors.ErrInvalidContactID)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), uint(id), req.To); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Contact status updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeServiceError(c, leaderrors.ErrInvalidContactID)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Contact deleted successfully")
}
