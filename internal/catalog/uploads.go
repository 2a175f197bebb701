package catalog

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// ImageSaver stores an uploaded product image and returns the public URL path
// it will be served from.
type ImageSaver interface {
	Save(c *gin.Context, fh *multipart.FileHeader) (string, error)
}

// ImageStore writes uploads into a flat directory, named by upload time plus
// the original extension, and serves them back under /uploads.
type ImageStore struct {
	Dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{Dir: dir}, nil
}

func (s *ImageStore) Save(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, filepath.Join(s.Dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
