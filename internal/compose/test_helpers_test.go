package compose

import (
	"os"
	"path/filepath"
	"testing"
)

func writeComposeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.WriteFile(path, []byte("services: {}\n"), 0o644); err != nil {
			t.Fatalf("write compose file: %v", err)
		}
	}
}
