package project_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizdash/internal/project"
	projecterrors "bizdash/internal/project/errors"
	"bizdash/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeProjectService struct {
	createFn         func(ctx context.Context, req project.CreateProjectRequest) (project.Project, error)
	getAllFn         func(ctx context.Context) ([]project.Project, error)
	getSplitListFn   func(ctx context.Context) (project.SplitListResponse, error)
	getByProjectIDFn func(ctx context.Context, projectID int) (project.Project, error)
	updateFn         func(ctx context.Context, projectID int, data project.ProjectData, existingDocs, newDocs []project.ProjectDocument) (project.Project, error)
	markCompletedFn  func(ctx context.Context, projectID int) error
}

func (f *fakeProjectService) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	return f.createFn(ctx, req)
}
func (f *fakeProjectService) GetAll(ctx context.Context) ([]project.Project, error) {
	return f.getAllFn(ctx)
}
func (f *fakeProjectService) GetSplitList(ctx context.Context) (project.SplitListResponse, error) {
	return f.getSplitListFn(ctx)
}
func (f *fakeProjectService) GetByProjectID(ctx context.Context, projectID int) (project.Project, error) {
	return f.getByProjectIDFn(ctx, projectID)
}
func (f *fakeProjectService) Update(ctx context.Context, projectID int, data project.ProjectData, existingDocs, newDocs []project.ProjectDocument) (project.Project, error) {
	return f.updateFn(ctx, projectID, data, existingDocs, newDocs)
}
func (f *fakeProjectService) MarkCompleted(ctx context.Context, projectID int) error {
	return f.markCompletedFn(ctx, projectID)
}

func setupProjectRouter(t *testing.T, svc project.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := upload.NewStore(t.TempDir())
	assert.NoError(t, err)
	r := gin.New()
	project.RegisterRoutes(r, project.NewHandler(svc, store))
	return r
}

func TestProjectHandler_Create(t *testing.T) {
	svc := &fakeProjectService{
		createFn: func(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
			assert.Equal(t, "Website revamp", req.Name)
			assert.Len(t, req.Documents, 1)
			assert.Equal(t, "Brief", req.Documents[0].Label)
			assert.True(t, strings.HasPrefix(req.Documents[0].Path, "/uploads/"))
			return project.Project{ProjectID: 1001, Name: req.Name, Documents: req.Documents}, nil
		},
	}
	r := setupProjectRouter(t, svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	assert.NoError(t, mw.WriteField("name", "Website revamp"))
	assert.NoError(t, mw.WriteField("date", "2026-08-01"))
	assert.NoError(t, mw.WriteField("documentLabels", "Brief"))
	fw, err := mw.CreateFormFile("documents", "brief.pdf")
	assert.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/projects", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Project added successfully", body["message"])
	assert.Equal(t, float64(1001), body["projectId"])
}

func TestProjectHandler_GetDetails(t *testing.T) {
	t.Run("non-numeric id is a 400", func(t *testing.T) {
		r := setupProjectRouter(t, &fakeProjectService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/projectslist/ProjectDetails/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing project is a 404", func(t *testing.T) {
		svc := &fakeProjectService{
			getByProjectIDFn: func(ctx context.Context, projectID int) (project.Project, error) {
				return project.Project{}, projecterrors.ErrProjectNotFound
			},
		}
		r := setupProjectRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/projectslist/ProjectDetails/9999", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Project not found", body["message"])
	})
}

func TestProjectHandler_GetSplitList(t *testing.T) {
	svc := &fakeProjectService{
		getSplitListFn: func(ctx context.Context) (project.SplitListResponse, error) {
			return project.SplitListResponse{
				ActiveProjects:    []project.Project{{ProjectID: 1001}},
				CompletedProjects: []project.Project{},
			}, nil
		},
	}
	r := setupProjectRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projectslist", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body project.SplitListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.ActiveProjects, 1)
	assert.NotNil(t, body.CompletedProjects)
}

func TestProjectHandler_Update(t *testing.T) {
	svc := &fakeProjectService{
		updateFn: func(ctx context.Context, projectID int, data project.ProjectData, existingDocs, newDocs []project.ProjectDocument) (project.Project, error) {
			assert.Equal(t, 1001, projectID)
			assert.Equal(t, "New name", data.Name)
			assert.Len(t, existingDocs, 1)
			assert.Equal(t, "Signed brief", existingDocs[0].Label)
			assert.Empty(t, newDocs)
			return project.Project{ProjectID: 1001, Name: data.Name}, nil
		},
	}
	r := setupProjectRouter(t, svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	assert.NoError(t, mw.WriteField("projectData", `{"name":"New name","status":"active"}`))
	assert.NoError(t, mw.WriteField("existingDocuments",
		`{"filename":"1693-brief.pdf","originalName":"brief.pdf","path":"/uploads/1693-brief.pdf","label":"Signed brief"}`))
	assert.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/projectslist/1001", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Project updated successfully", body["message"])
}

func TestProjectHandler_MarkCompleted(t *testing.T) {
	t.Run("accepts a numeric id", func(t *testing.T) {
		svc := &fakeProjectService{
			markCompletedFn: func(ctx context.Context, projectID int) error {
				assert.Equal(t, 1001, projectID)
				return nil
			},
		}
		r := setupProjectRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/projectslist/activeProjects/markAsCompleted",
			strings.NewReader(`{"id":1001}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Project marked as completed successfully", body["message"])
	})

	t.Run("accepts a string id", func(t *testing.T) {
		svc := &fakeProjectService{
			markCompletedFn: func(ctx context.Context, projectID int) error {
				assert.Equal(t, 1001, projectID)
				return nil
			},
		}
		r := setupProjectRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/projectslist/activeProjects/markAsCompleted",
			strings.NewReader(`{"id":"1001"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already completed is a 404", func(t *testing.T) {
		svc := &fakeProjectService{
			markCompletedFn: func(ctx context.Context, projectID int) error {
				return projecterrors.ErrNotFoundOrCompleted
			},
		}
		r := setupProjectRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/projectslist/activeProjects/markAsCompleted",
			strings.NewReader(`{"id":1001}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Project not found or already completed", body["message"])
	})

	t.Run("missing id is a 400", func(t *testing.T) {
		r := setupProjectRouter(t, &fakeProjectService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/projectslist/activeProjects/markAsCompleted",
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
