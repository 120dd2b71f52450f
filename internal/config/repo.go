// Where: cli/internal/config/repo.go
// What: Deployment repository discovery logic.
// Why: Find the compose file root from env, the file system, or global config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skyfield-robotics/navbox/cli/internal/constants"
	"github.com/skyfield-robotics/navbox/cli/internal/envutil"
	"github.com/skyfield-robotics/navbox/cli/internal/meta"
)

// ResolveRepoRoot determines the deployment repository root.
// Priority:
// 1. NAVBOX_REPO environment variable (validated as root or searched upward)
// 2. Upward search for the base compose file from startDir
// 3. repo_path in the global config
func ResolveRepoRoot(startDir string) (string, error) {
	if repo := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixRepo)); repo != "" {
		if root, ok := findRepoRoot(repo); ok {
			return root, nil
		}
	}

	if startDir != "" {
		if root, ok := findRepoRoot(startDir); ok {
			return root, nil
		}
	}

	if cfgPath, err := GlobalConfigPath(); err == nil {
		if cfg, err := LoadGlobalConfig(cfgPath); err == nil && cfg.RepoPath != "" {
			if root, ok := findRepoRoot(cfg.RepoPath); ok {
				return root, nil
			}
		}
	}

	return "", fmt.Errorf("deployment repo not found: no %s above the working directory; set %s or repo_path in the global config",
		meta.BaseComposeFile, envutil.HostEnvKey(constants.HostSuffixRepo))
}

// findRepoRoot searches upward from the given path to find a directory
// containing the base compose file.
func findRepoRoot(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, meta.BaseComposeFile)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}
