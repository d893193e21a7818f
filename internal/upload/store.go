package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// Document is the stored-file metadata kept alongside employees and projects.
type Document struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
	Label        string `json:"label,omitempty"`
}

// Store persists request uploads on local disk. Names are generated as
// "<unix-ms>-<original-name>" and files are served back under /uploads.
// There is no dedup or cleanup of orphans; a failed insert leaves the file
// behind, same as the system this replaces.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save buffers one multipart file to disk and returns its document metadata
// with a relative /uploads path.
func (s *Store) Save(c *gin.Context, fh *multipart.FileHeader) (Document, error) {
	original := filepath.Base(fh.Filename)
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), original)
	if err := c.SaveUploadedFile(fh, filepath.Join(s.dir, name)); err != nil {
		return Document{}, err
	}
	return Document{
		Filename:     name,
		OriginalName: original,
		Path:         "/uploads/" + name,
	}, nil
}

// SaveAll saves every file under the given multipart field.
func (s *Store) SaveAll(c *gin.Context, field string) ([]Document, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	files := form.File[field]
	docs := make([]Document, 0, len(files))
	for _, fh := range files {
		doc, err := s.Save(c, fh)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// RequestBaseURL reconstructs scheme://host for links that must be absolute
// (employee document paths are stored that way).
func RequestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
