package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/pkg/config"
	"storefront/pkg/logger"
)

// UploadHandler serves product image uploads (admin). Files land on local
// disk under the configured directory and are served statically at /uploads.
type UploadHandler struct {
	cfg config.UploadConfig
}

// NewUploadHandler creates an upload handler and ensures the upload
// directory exists
func NewUploadHandler(cfg config.UploadConfig) (*UploadHandler, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadHandler{cfg: cfg}, nil
}

// Upload handles a multipart product image upload
func (h *UploadHandler) Upload(c echo.Context) error {
	log := logger.FromContext(c)

	file, err := c.FormFile("image")
	if err != nil {
		log.Warn("Upload rejected, no image file provided", zap.Error(err))
		return respondError(c, http.StatusBadRequest, "No image file provided")
	}

	if file.Size > h.cfg.MaxSizeBytes {
		log.Warn("Upload rejected, file too large",
			zap.Int64("size", file.Size),
			zap.Int64("max", h.cfg.MaxSizeBytes))
		return respondError(c, http.StatusBadRequest, "Image file too large")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		log.Warn("Upload rejected, not an image", zap.String("content_type", contentType))
		return respondError(c, http.StatusBadRequest, "Only image files are allowed")
	}

	src, err := file.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return respondStorageError(c, "Error uploading image", err)
	}
	defer src.Close()

	filename := "product-" + uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(h.cfg.Dir, filename))
	if err != nil {
		log.Error("Failed to create upload target", zap.Error(err))
		return respondStorageError(c, "Error uploading image", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Error("Failed to write uploaded file", zap.Error(err))
		return respondStorageError(c, "Error uploading image", err)
	}

	imageURL := h.cfg.BaseURL + "/uploads/" + filename
	log.Info("Image uploaded",
		zap.String("filename", filename),
		zap.Int64("size", file.Size))
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Image uploaded successfully",
		"imageUrl": imageURL,
		"filename": filename,
	})
}
