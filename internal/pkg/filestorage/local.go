package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/selim/lostfound/internal/pkg/logger"
)

// LocalStorage stores blobs on the local filesystem under a single base
// directory and hands out references shaped like "uploads/<name>" (or full
// URLs when a base URL is configured).
type LocalStorage struct {
	basePath string
	baseURL  string
}

var _ BlobStore = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is optional; if provided, references become absolute URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Save persists an uploaded file under a collision-free name and returns
// the reference to store alongside the owning record.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	var ref string
	if ls.baseURL != "" {
		ref = strings.TrimRight(ls.baseURL, "/") + "/" + uniqueFilename
	} else {
		ref = filepath.Join("uploads", uniqueFilename)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("ref", ref).Msg("File saved successfully")
	return ref, nil
}

// Delete removes the blob a reference points to. The reference may be the
// relative form or an absolute URL produced by Save; only the final path
// segment selects the file. Missing files are treated as already deleted.
func (ls *LocalStorage) Delete(ref string) error {
	if ref == "" {
		return nil
	}

	filename := filepath.Base(ref)
	if filename == "" || filename == "." || filename == "/" || filename == "uploads" {
		return fmt.Errorf("invalid blob reference: %s", ref)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("Blob to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete blob")
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("Blob deleted successfully")
	return nil
}
