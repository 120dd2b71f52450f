// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep project identity in one place.
package meta

const (
	// Project Identity
	AppName   = "navbox"
	Slug      = "navbox"
	EnvPrefix = "NAVBOX"

	// ComposeProject is the fixed docker compose project name all
	// deployment targets run under.
	ComposeProject = "navbox"

	// Directory Layout
	HomeDir   = ".navbox"
	AssetsDir = "assets"

	// ManifestName is the optional per-repository deployment manifest.
	ManifestName = "navbox.yaml"

	// BaseComposeFile is the compose file every scenario starts from.
	BaseComposeFile = "docker-compose.yaml"
)
