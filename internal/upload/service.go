// Package upload stores admin image uploads on local disk.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"grocery-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxSize   = 5 << 20
	PublicDir = "/uploads/"
	sniffLen  = 512
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type Result struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type Service interface {
	Save(ctx context.Context, r io.Reader) (*Result, error)
}

type service struct {
	dir     string
	baseURL string
	newName func() string
}

// NewService stores files in dir and builds URLs from baseURL + /uploads/.
func NewService(dir, baseURL string) Service {
	return &service{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		newName: func() string { return uuid.NewString() },
	}
}

func (s *service) Save(ctx context.Context, r io.Reader) (*Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SaveUpload"),
	)

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return nil, ErrNoFile
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := extensions[contentType]
	if !ok {
		log.Warn("rejected upload", zap.String("content_type", contentType))
		return nil, ErrUnsupportedType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Error("failed to create upload dir", zap.Error(err))
		return nil, err
	}

	name := s.newName() + ext
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Error("failed to create temp file", zap.Error(err))
		return nil, err
	}
	defer os.Remove(tmp.Name())

	// One byte past the limit tells us the file is too large.
	body := io.MultiReader(bytes.NewReader(head), r)
	size, err := io.Copy(tmp, io.LimitReader(body, MaxSize+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Error("failed to write upload", zap.Error(err))
		return nil, err
	}
	if size > MaxSize {
		return nil, ErrFileTooLarge
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		log.Error("failed to move upload into place", zap.Error(err))
		return nil, err
	}

	log.Info("SaveUpload success", zap.String("name", name), zap.Int64("size", size))
	return &Result{
		URL:         s.baseURL + PublicDir + name,
		Name:        name,
		Size:        size,
		ContentType: contentType,
	}, nil
}
