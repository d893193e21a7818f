package lead_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizdash/internal/lead"
	leaderrors "bizdash/internal/lead/errors"
	"bizdash/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLeadService struct {
	createFn             func(ctx context.Context, req lead.CreateLeadRequest) (*lead.Lead, error)
	getGroupedContactsFn func(ctx context.Context) (*lead.GroupedContactsResponse, error)
	updateStatusFn       func(ctx context.Context, id uint, to string) error
	deleteFn             func(ctx context.Context, id uint) error
}

func (f *fakeLeadService) Create(ctx context.Context, req lead.CreateLeadRequest) (*lead.Lead, error) {
	return f.createFn(ctx, req)
}
func (f *fakeLeadService) GetGroupedContacts(ctx context.Context) (*lead.GroupedContactsResponse, error) {
	return f.getGroupedContactsFn(ctx)
}
func (f *fakeLeadService) UpdateStatus(ctx context.Context, id uint, to string) error {
	return f.updateStatusFn(ctx, id, to)
}
func (f *fakeLeadService) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func setupLeadRouter(svc lead.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	lead.RegisterRoutes(r, lead.NewHandler(svc))
	return r
}

func TestLeadHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeadService{
			createFn: func(ctx context.Context, req lead.CreateLeadRequest) (*lead.Lead, error) {
				return &lead.Lead{ID: 4, Client: req.Client, Status: lead.StatusLead}, nil
			},
		}
		r := setupLeadRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leads",
			strings.NewReader(`{"client":"Acme Pte Ltd","pic":"J. Tan","sector":"Retail"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Lead added successfully", body["message"])
		assert.Equal(t, float64(4), body["leadId"])
	})

	t.Run("missing client is a 400", func(t *testing.T) {
		r := setupLeadRouter(&fakeLeadService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{"pic":"J. Tan"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeadHandler_GetGroupedContacts(t *testing.T) {
	svc := &fakeLeadService{
		getGroupedContactsFn: func(ctx context.Context) (*lead.GroupedContactsResponse, error) {
			return &lead.GroupedContactsResponse{
				Lead:     []lead.Lead{{ID: 1, Client: "A"}},
				Prospect: []lead.Lead{},
				Client:   []lead.Lead{},
			}, nil
		},
	}
	r := setupLeadRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body lead.GroupedContactsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Lead, 1)
}

func TestLeadHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeadService{
			updateStatusFn: func(ctx context.Context, id uint, to string) error {
				assert.Equal(t, uint(3), id)
				assert.Equal(t, "prospect", to)
				return nil
			},
		}
		r := setupLeadRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/contacts/3/status",
			strings.NewReader(`{"to":"prospect"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Contact status updated successfully", body["message"])
	})

	t.Run("no change is a 404", func(t *testing.T) {
		svc := &fakeLeadService{
			updateStatusFn: func(ctx context.Context, id uint, to string) error {
				return leaderrors.ErrStatusNotUpdated
			},
		}
		r := setupLeadRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/contacts/3/status",
			strings.NewReader(`{"to":"prospect"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Contact not found or status not updated", body["message"])
	})

	t.Run("bad id is a 400", func(t *testing.T) {
		r := setupLeadRouter(&fakeLeadService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/contacts/abc/status",
			strings.NewReader(`{"to":"prospect"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeadHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeadService{
			deleteFn: func(ctx context.Context, id uint) error { return nil },
		}
		r := setupLeadRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/contacts/3", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing contact is a 404", func(t *testing.T) {
		svc := &fakeLeadService{
			deleteFn: func(ctx context.Context, id uint) error {
				return leaderrors.ErrContactNotFound
			},
		}
		r := setupLeadRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/contacts/9", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Contact not found", body["message"])
	})
}
