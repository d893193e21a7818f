package project

import (
	"encoding/json"
	"net/http"
	"strconv"

	projecterrors "bizdash/internal/project/errors"
	"bizdash/internal/shared/apperror"
	"bizdash/internal/shared/response"
	"bizdash/internal/upload"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	store   *upload.Store
}

func NewHandler(service Service, store *upload.Store) *Handler {
	return &Handler{service: service, store: store}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.ErrorText, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid project form", err.Error(), nil)
		return
	}

	docs, err := h.store.SaveAll(c, "documents")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error adding project", err.Error(), nil)
		return
	}
	labels := c.PostFormArray("documentLabels")
	req.Documents = make([]ProjectDocument, 0, len(docs))
	for i, doc := range docs {
		label := doc.OriginalName
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		req.Documents = append(req.Documents, ProjectDocument{
			Filename:     doc.Filename,
			OriginalName: doc.OriginalName,
			Path:         doc.Path,
			Label:        label,
		})
	}

	row, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message":   "Project added successfully",
		"projectId": row.ProjectID,
		"project":   row,
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

func (h *Handler) GetSplitList(c *gin.Context) {
	resp, err := h.service.GetSplitList(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) GetDetails(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeServiceError(c, projecterrors.ErrInvalidProjectID)
		return
	}

	row, err := h.service.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, row)
}

// Update handles the multipart replace-by-id form: a projectData JSON field,
// optional resent metadata for stored documents, and optional new uploads
// labeled from a parallel array.
func (h *Handler) Update(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeServiceError(c, projecterrors.ErrInvalidProjectID)
		return
	}

	var data ProjectData
	if err := json.Unmarshal([]byte(c.PostForm("projectData")), &data); err != nil {
		writeServiceError(c, projecterrors.ErrInvalidProjectData)
		return
	}

	var existingDocs []ProjectDocument
	for _, raw := range c.PostFormArray("existingDocuments") {
		var doc ProjectDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			writeServiceError(c, projecterrors.ErrInvalidProjectData)
			return
		}
		existingDocs = append(existingDocs, doc)
	}

	saved, err := h.store.SaveAll(c, "newDocuments")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error updating project", err.Error(), nil)
		return
	}
	labels := c.PostFormArray("newDocumentLabels")
	newDocs := make([]ProjectDocument, 0, len(saved))
	for i, doc := range saved {
		label := doc.OriginalName
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		newDocs = append(newDocs, ProjectDocument{
			Filename:     doc.Filename,
			OriginalName: label,
			Path:         doc.Path,
			Label:        label,
		})
	}

	row, err := h.service.Update(c.Request.Context(), projectID, data, existingDocs, newDocs)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": row,
	})
}

func (h *Handler) MarkCompleted(c *gin.Context) {
	var req MarkCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, projecterrors.ErrInvalidProjectID)
		return
	}

	projectID, ok := coerceID(req.ID)
	if !ok {
		writeServiceError(c, projecterrors.ErrInvalidProjectID)
		return
	}

	if err := h.service.MarkCompleted(c.Request.Context(), projectID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Project marked as completed successfully")
}

func coerceID(v any) (int, bool) {
	switch id := v.(type) {
	case float64:
		return int(id), true
	case string:
		n, err := strconv.Atoi(id)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
