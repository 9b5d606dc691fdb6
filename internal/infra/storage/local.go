package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"toadtoe-api/config"

	"github.com/google/uuid"
)

// SaveUpload writes an uploaded file under UPLOADS_DIR with a uuid name and
// returns the stored path plus the public URL clients can embed.
func SaveUpload(file *multipart.FileHeader) (path, publicURL string, err error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif":
	default:
		return "", "", fmt.Errorf("unsupported file type %q", ext)
	}

	if err := os.MkdirAll(config.UPLOADS_DIR, 0o755); err != nil {
		return "", "", err
	}

	name := uuid.NewString() + ext
	path = filepath.Join(config.UPLOADS_DIR, name)

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", err
	}

	return path, config.PUBLIC_UPLOADS_URL + "/" + name, nil
}
