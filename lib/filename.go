package lib

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
)

// GenerateStoragePath builds a collision-safe storage path for an uploaded
// file: <namespace>/<random hex>.<ext>. The extension is taken from the
// original filename, lowercased.
func GenerateStoragePath(namespace, originalName string) string {
	buf := make([]byte, 8)
	// rand.Read never fails on supported platforms
	_, _ = rand.Read(buf)

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(originalName), "."))
	if ext == "" {
		ext = "bin"
	}

	return fmt.Sprintf("%s/%s.%s", namespace, hex.EncodeToString(buf), ext)
}
