package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bizdash/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStore_SaveAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	store, err := upload.NewStore(dir)
	assert.NoError(t, err)

	var saved []upload.Document
	r := gin.New()
	r.POST("/upload", func(c *gin.Context) {
		docs, err := store.SaveAll(c, "documents")
		assert.NoError(t, err)
		saved = docs
		c.Status(http.StatusOK)
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"brief.pdf", "quote.pdf"} {
		fw, err := mw.CreateFormFile("documents", name)
		assert.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4"))
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, saved, 2)
	for _, doc := range saved {
		assert.True(t, strings.HasSuffix(doc.Filename, "-"+doc.OriginalName))
		assert.Equal(t, "/uploads/"+doc.Filename, doc.Path)
		data, err := os.ReadFile(filepath.Join(dir, doc.Filename))
		assert.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))
	}
	assert.Equal(t, "brief.pdf", saved[0].OriginalName)
	assert.Equal(t, "quote.pdf", saved[1].OriginalName)
}

func TestStore_SaveAll_EmptyField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := upload.NewStore(t.TempDir())
	assert.NoError(t, err)

	r := gin.New()
	r.POST("/upload", func(c *gin.Context) {
		docs, err := store.SaveAll(c, "documents")
		assert.NoError(t, err)
		assert.Empty(t, docs)
		c.Status(http.StatusOK)
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	assert.NoError(t, mw.WriteField("name", "no files here"))
	assert.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestBaseURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var base string
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		base = upload.RequestBaseURL(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://dashboard.local:5038/x", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://dashboard.local:5038", base)
}
