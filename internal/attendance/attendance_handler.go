package attendance

import (
	"errors"
	"net/http"
	"strconv"

	attendanceerrors "bizdash/internal/attendance/errors"
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

func (h *Handler) Submit(c *gin.Context) {
	var records []SubmitRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		httpErr := apperror.ToHTTP(attendanceerrors.ErrExpectedArray)
		response.Error(c, httpErr.Status, httpErr.Message, err.Error(), nil)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), records)
	if err != nil {
		if errors.Is(err, attendanceerrors.ErrNoValidRecords) {
			response.JSON(c, http.StatusBadRequest, gin.H{
				"message":        "No valid attendance records found",
				"invalidRecords": result.InvalidRecords,
			})
			return
		}
		writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message":        "Attendance submitted successfully",
		"insertedCount":  result.InsertedCount,
		"invalidRecords": result.InvalidRecords,
	})
}

func (h *Handler) Bulk(c *gin.Context) {
	var records []SubmitRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		httpErr := apperror.ToHTTP(attendanceerrors.ErrInvalidBulkData)
		response.Error(c, httpErr.Status, httpErr.Message, err.Error(), nil)
		return
	}

	results, err := h.service.BulkUpsert(c.Request.Context(), records)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "Bulk attendance processed",
		"results": results,
	})
}

func (h *Handler) PresentCount(c *gin.Context) {
	result, err := h.service.PresentCount(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *Handler) DayRecords(c *gin.Context) {
	result, err := h.service.DayRecords(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *Handler) Monthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrInvalidMonth)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrInvalidMonth)
		return
	}

	result, err := h.service.Monthly(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
