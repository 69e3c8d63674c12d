package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/internlink/internal/pkg/logger"
)

// publicPrefix is the URL path under which the storage directory is served.
const publicPrefix = "/uploads"

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Save stores an uploaded file under a generated, collision-resistant name.
// The returned URL is what gets recorded in the database; the original
// filename is the caller's responsibility to keep if it matters.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, subdir string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := ls.basePath
	if subdir != "" {
		dir = filepath.Join(ls.basePath, subdir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(dir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	fileURL := publicPrefix + "/" + storedName
	if subdir != "" {
		fileURL = publicPrefix + "/" + subdir + "/" + storedName
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("savedAs", storedName).Str("url", fileURL).Msg("File saved")
	return fileURL, nil
}

// Resolve returns the filesystem path behind a public URL, or "" when the
// URL does not point inside the storage directory.
func (ls *LocalStorage) Resolve(fileURL string) string {
	if !strings.HasPrefix(fileURL, publicPrefix+"/") {
		return ""
	}
	rel := strings.TrimPrefix(fileURL, publicPrefix+"/")
	if rel == "" {
		return ""
	}

	// Reject path traversal in stored URLs
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return ""
	}

	return filepath.Join(ls.basePath, rel)
}

// Delete removes a file from storage. Deleting a missing file is treated as
// success so the operation stays idempotent.
func (ls *LocalStorage) Delete(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	physicalPath := ls.Resolve(fileURL)
	if physicalPath == "" {
		return fmt.Errorf("invalid file URL: %s", fileURL)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
