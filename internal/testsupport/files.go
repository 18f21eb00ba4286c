package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path with a few placeholder bytes, making parent
// directories as needed.
func WriteFile(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte{0x1a, 0x45, 0xdf, 0xa3}, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteTree creates every relative path under root and returns root.
func WriteTree(t testing.TB, root string, paths ...string) string {
	t.Helper()

	for _, rel := range paths {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)))
	}
	return root
}
