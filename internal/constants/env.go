// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize host env suffixes to avoid typos and inconsistencies.
package constants

const (
	// Host-level overrides (combined with the NAVBOX_ prefix by envutil).
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"
	HostSuffixHome       = "HOME"
	HostSuffixRepo       = "REPO"
	HostSuffixAutopilot  = "AUTOPILOT"

	// Demo asset bundle overrides.
	HostSuffixAssetsBucket = "ASSETS_BUCKET"
	HostSuffixAssetsRegion = "ASSETS_REGION"
)
