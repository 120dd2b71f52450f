// Where: cli/internal/compose/files.go
// What: Compose file resolution for deployment scenarios.
// Why: Turn a scenario's override list into validated -f paths.
package compose

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skyfield-robotics/navbox/cli/internal/meta"
)

// ResolveComposeFiles returns the ordered compose file list for a scenario:
// the base file, the scenario's overrides, then any extra overrides from the
// repo manifest. The base file is always included, also when the override
// list is empty. Every file must exist under the repo root.
func ResolveComposeFiles(repoDir string, overrides, extra []string) ([]string, error) {
	names := make([]string, 0, 1+len(overrides)+len(extra))
	names = append(names, meta.BaseComposeFile)
	names = append(names, overrides...)
	names = append(names, extra...)

	files := make([]string, 0, len(names))
	for _, name := range names {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(repoDir, name)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("compose file not found: %s", path)
		}
		files = append(files, path)
	}
	return files, nil
}
