// Where: cli/internal/app/ports.go
// What: Interfaces the command handlers depend on.
// Why: Keep handlers testable without a Docker daemon or compose binary.
package app

import (
	"context"

	"github.com/skyfield-robotics/navbox/cli/internal/assets"
	"github.com/skyfield-robotics/navbox/cli/internal/compose"
)

// ComposeRequest addresses one compose invocation: the repo the files live
// in, the fixed project name, the ordered compose file list, and the
// explicit service list.
type ComposeRequest struct {
	RepoDir  string
	Project  string
	Files    []string
	Services []string
}

// UpParams carries up-only flags.
type UpParams struct {
	Detach  bool
	EnvFile string
}

// LogParams carries log streaming flags.
type LogParams struct {
	Follow     bool
	Tail       int
	Timestamps bool
	Service    string
}

// Composer executes compose operations for deployment targets.
type Composer interface {
	Create(ctx context.Context, req ComposeRequest) error
	Build(ctx context.Context, req ComposeRequest, noCache bool) error
	Up(ctx context.Context, req ComposeRequest, params UpParams) error
	Start(ctx context.Context, req ComposeRequest) error
	Stop(ctx context.Context, req ComposeRequest) error
	Logs(ctx context.Context, req ComposeRequest, params LogParams) error
}

// Downer tears down the whole project namespace.
type Downer interface {
	Down(ctx context.Context, project string, removeVolumes bool) error
}

// Exposer grants host display access to the project's GUI containers and
// returns the number of grants performed.
type Exposer interface {
	Expose(ctx context.Context, project string) (int, error)
}

// ContainerLister enumerates the project's containers.
type ContainerLister interface {
	List(ctx context.Context, project string) ([]compose.ContainerInfo, error)
}

// ScenarioChecker verifies that the given services exist in the merged
// compose model and returns the missing ones.
type ScenarioChecker interface {
	Check(ctx context.Context, project string, files, services []string) ([]string, error)
}

// AssetsDeps holds the injectable pieces of the assets pull command.
type AssetsDeps struct {
	NewFetcher func(ctx context.Context, region, accessKey, secretKey string) (assets.ObjectFetcher, error)
	DestDir    func() (string, error)
}
