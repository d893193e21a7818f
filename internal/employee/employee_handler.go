package employee

import (
	"net/http"

	"bizdash/internal/shared/apperror"
	"bizdash/internal/shared/response"
	"bizdash/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	store   *upload.Store
	logger  *zap.Logger
}

func NewHandler(service Service, store *upload.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, store: store, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.ErrorText, httpErr.Details)
}

// Create handles the multipart employee-intake form: files are buffered to
// disk first (their public paths are absolute URLs), then the record is
// inserted.
func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid employee form", err.Error(), nil)
		return
	}

	docs, err := h.store.SaveAll(c, "documents")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error adding employee", err.Error(), nil)
		return
	}
	base := upload.RequestBaseURL(c)
	for i := range docs {
		docs[i].Path = base + docs[i].Path
	}
	req.Documents = docs

	emp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, CreateEmployeeResponse{
		Message:    "Employee added successfully",
		EmployeeID: emp.ID,
		Employee:   emp,
	})
}

func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, CountResponse{Count: count})
}

func (h *Handler) LatestUserID(c *gin.Context) {
	latest, err := h.service.LatestUserID(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, LatestUserIDResponse{LatestUserID: latest})
}
