package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/stylelab/fitting-lab/config"
)

// ImageStore persists uploaded and generated images: S3 when a bucket is
// configured, the local upload directory otherwise. References it returns are
// S3 object keys or local file paths; ResolveImageRef turns either into
// something a client can fetch.
type ImageStore struct{}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}

// SaveImage stores raw image bytes under a generated name and returns the
// stored reference. Implements the fitting orchestrator's sink.
func (ImageStore) SaveImage(ctx context.Context, data []byte, contentType string) (string, error) {
	fileName := fmt.Sprintf("generated_fitting_%d%s", time.Now().UnixNano(), extensionFor(contentType))

	if S3Enabled() {
		objectKey := "generated_images/" + fileName
		return UploadFileToS3(ctx, bytes.NewReader(data), objectKey, contentType)
	}

	if err := os.MkdirAll(config.UploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	path := filepath.Join(config.UploadDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

// SaveUpload stores one multipart file upload and returns its reference.
func (s ImageStore) SaveUpload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	fileName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename))

	if S3Enabled() {
		objectKey := "user_images/" + fileName
		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}
		return UploadFileToS3(ctx, file, objectKey, contentType)
	}

	if err := os.MkdirAll(config.UploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	path := filepath.Join(config.UploadDir, fileName)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	return path, nil
}

// ResolveImageRef maps a stored reference to something fetchable by the
// client: http(s) URLs and data URLs pass through, S3 keys get a presigned
// URL (falling back to the key on signing failure), local paths become
// /uploads/ URLs.
func ResolveImageRef(ctx context.Context, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	if S3Enabled() {
		if url, err := GetPresignedURL(ctx, ref); err == nil {
			return url
		}
		return ref
	}
	return "/" + filepath.ToSlash(ref)
}
