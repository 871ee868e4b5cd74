package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"spectrumconnect-service/internal/pkg/constvars"
	"strings"
)

var allowedImageContentTypes = map[string]bool{
	constvars.MIMEImageJPEG: true,
	constvars.MIMEImagePNG:  true,
	constvars.MIMEImageWEBP: true,
}

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// ValidateImage checks the declared size and extension of an uploaded image.
func ValidateImage(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return errors.New("image file is missing")
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSizeInMegabytes)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", strings.Join(allowedImageExtensions, ", "))
}

// ValidateImageContent sniffs the first bytes of the file.
func ValidateImageContent(head []byte) error {
	contentType := http.DetectContentType(head)
	if !allowedImageContentTypes[contentType] {
		return fmt.Errorf("unsupported image content type %s", contentType)
	}
	return nil
}
