package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"pettime_backend/internal/config"
	"pettime_backend/internal/storage"

	"github.com/google/uuid"
)

// saveUpload validates and stores a multipart image, returning its public
// URL. dir groups files by entity ("pets", "produtos").
func saveUpload(ctx context.Context, store storage.Storage, dir string, fh *multipart.FileHeader) (string, error) {
	cfg := config.GetConfig()

	if fh.Size > cfg.Upload.MaxSize {
		return "", fmt.Errorf("file too large: %d bytes", fh.Size)
	}

	contentType := fh.Header.Get("Content-Type")
	allowed := false
	for _, t := range cfg.Upload.AllowedTypes {
		if t == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	path := fmt.Sprintf("%s/%s%s", dir, uuid.NewString(), ext)

	if err := store.Save(ctx, path, src, contentType); err != nil {
		return "", err
	}

	return store.GetURL(ctx, path)
}
