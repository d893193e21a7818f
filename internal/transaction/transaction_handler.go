package transaction

import (
	"net/http"

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
	var req CreateTransactionRequest
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
		"message": "Transaction added successfully",
		"id":      row.ID,
	})
}

func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Monthly(c *gin.Context) {
	series, err := h.service.MonthlySeries(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, series)
}

func (h *Handler) Expenses(c *gin.Context) {
	breakdown, err := h.service.ExpenseBreakdown(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, breakdown)
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

func (h *Handler) AccountBalance(c *gin.Context) {
	balance, err := h.service.AccountBalance(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, balance)
}
