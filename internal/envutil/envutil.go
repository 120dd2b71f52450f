// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"

	"github.com/skyfield-robotics/navbox/cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the brand prefix with the given suffix.
// Example: HostEnvKey("REPO") returns "NAVBOX_REPO".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("REPO") returns the value of NAVBOX_REPO.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}
