package services

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"luxehaven_server/structs"
)

// fakeFileStore records uploads in memory
type fakeFileStore struct {
	uploads map[string][]byte
}

func (f *fakeFileStore) Upload(path string, data []byte) error {
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[path] = data
	return nil
}

func (f *fakeFileStore) PublicURL(path string) string {
	return "https://cdn.example.com/" + path
}

func TestUploadProductImageUsesProductsNamespace(t *testing.T) {
	store := &fakeFileStore{}
	ss := NewStorageService(testLogger(), store)

	url, err := ss.UploadProductImage("bottle.PNG", []byte("imagebytes"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if !strings.HasPrefix(url, "https://cdn.example.com/products/") {
		t.Fatalf("unexpected public URL %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("expected lowercased extension, got %q", url)
	}

	if len(store.uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(store.uploads))
	}
	for path, data := range store.uploads {
		if !strings.HasPrefix(path, "products/") {
			t.Fatalf("file stored outside products namespace: %q", path)
		}
		if !bytes.Equal(data, []byte("imagebytes")) {
			t.Fatal("stored bytes do not match upload")
		}
	}
}

func TestDiskFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskFileStore(&structs.StorageConfig{
		UploadDir:     dir,
		PublicBaseURL: "https://shop.example.com/uploads/",
	})

	if err := store.Upload("products/abc.jpg", []byte("data")); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	written, err := os.ReadFile(filepath.Join(dir, "products", "abc.jpg"))
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(written) != "data" {
		t.Fatalf("wrong contents: %q", written)
	}

	if got := store.PublicURL("products/abc.jpg"); got != "https://shop.example.com/uploads/products/abc.jpg" {
		t.Fatalf("unexpected public URL %q", got)
	}
}
