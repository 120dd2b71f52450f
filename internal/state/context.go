// Where: cli/internal/state/context.go
// What: Deployment context resolution.
// Why: Normalize repo paths and manifest inputs into one Context value.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skyfield-robotics/navbox/cli/internal/manifest"
	"github.com/skyfield-robotics/navbox/cli/internal/meta"
)

// Context carries everything a command needs to address the deployment:
// the repo the compose files live in, the fixed compose project name, and
// the optional manifest with its defaults.
type Context struct {
	RepoDir        string
	ManifestPath   string
	ComposeProject string
	Manifest       manifest.Manifest
	HasManifest    bool
}

// ExtraOverrides returns manifest-supplied extra override files for a scenario.
func (c Context) ExtraOverrides(scenarioName string) []string {
	if !c.HasManifest {
		return nil
	}
	return c.Manifest.ExtraOverrides(scenarioName)
}

// ResolveContext validates the repo root and loads the optional manifest.
func ResolveContext(repoDir string) (Context, error) {
	absRepoDir, err := filepath.Abs(repoDir)
	if err != nil {
		return Context{}, fmt.Errorf("resolve repo dir: %w", err)
	}

	basePath := filepath.Join(absRepoDir, meta.BaseComposeFile)
	if _, err := os.Stat(basePath); err != nil {
		return Context{}, fmt.Errorf("base compose file not found: %s", basePath)
	}

	manifestPath := filepath.Join(absRepoDir, meta.ManifestName)
	m, found, err := manifest.Load(manifestPath)
	if err != nil {
		return Context{}, err
	}

	return Context{
		RepoDir:        absRepoDir,
		ManifestPath:   manifestPath,
		ComposeProject: meta.ComposeProject,
		Manifest:       m,
		HasManifest:    found,
	}, nil
}
