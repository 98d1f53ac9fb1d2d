package services

import (
	"fmt"
	"luxehaven_server/lib"
	"luxehaven_server/structs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MonkyMars/gecho"
)

// FileStore is the narrow contract the application has with its object
// storage: write bytes under a path, resolve a path to a public URL. A
// hosted-bucket backend can replace the disk one without touching callers.
type FileStore interface {
	Upload(path string, data []byte) error
	PublicURL(path string) string
}

// StorageService stores uploaded product images under a per-entity namespace
// with collision-safe random filenames.
type StorageService struct {
	logger *gecho.Logger
	store  FileStore
}

func NewStorageService(logger *gecho.Logger, store FileStore) *StorageService {
	return &StorageService{
		logger: logger,
		store:  store,
	}
}

// UploadProductImage stores one image and returns its public URL
func (ss *StorageService) UploadProductImage(originalName string, data []byte) (string, error) {
	path := lib.GenerateStoragePath("products", originalName)

	if err := ss.store.Upload(path, data); err != nil {
		ss.logger.Error("Failed to store uploaded image",
			gecho.Field("error", err),
			gecho.Field("path", path),
		)
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	url := ss.store.PublicURL(path)
	ss.logger.Debug("Image stored", gecho.Field("path", path), gecho.Field("url", url))
	return url, nil
}

// DiskFileStore writes files under a root directory and serves them from a
// configured public base URL.
type DiskFileStore struct {
	root    string
	baseURL string
}

func NewDiskFileStore(cfg *structs.StorageConfig) *DiskFileStore {
	return &DiskFileStore{
		root:    cfg.UploadDir,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

func (fs *DiskFileStore) Upload(path string, data []byte) error {
	full := filepath.Join(fs.root, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	return os.WriteFile(full, data, 0o644)
}

func (fs *DiskFileStore) PublicURL(path string) string {
	return fs.baseURL + "/" + path
}
