package lib

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerateStoragePathShape(t *testing.T) {
	got := GenerateStoragePath("products", "Photo Of Bottle.JPG")

	pattern := regexp.MustCompile(`^products/[0-9a-f]{16}\.jpg$`)
	if !pattern.MatchString(got) {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestGenerateStoragePathNoExtension(t *testing.T) {
	got := GenerateStoragePath("products", "upload")

	if !strings.HasSuffix(got, ".bin") {
		t.Fatalf("expected .bin fallback extension, got %q", got)
	}
}

func TestGenerateStoragePathUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		p := GenerateStoragePath("products", "a.png")
		if seen[p] {
			t.Fatalf("generated duplicate path %q", p)
		}
		seen[p] = true
	}
}
