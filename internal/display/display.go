// Where: cli/internal/display/display.go
// What: Host display-server access grants for GUI containers.
// Why: GUI services must be able to open windows on the host X server
//      before compose brings them up.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/skyfield-robotics/navbox/cli/internal/compose"
)

// guiServices is the fixed allowlist of services that render on the host
// display. Containers outside this list are left untouched.
var guiServices = map[string]struct{}{
	"qgc":    {},
	"rviz":   {},
	"gazebo": {},
}

// IsGUIService reports whether the service renders on the host display.
func IsGUIService(service string) bool {
	_, ok := guiServices[service]
	return ok
}

// GUIServices returns the allowlist in stable order.
func GUIServices() []string {
	return []string{"gazebo", "qgc", "rviz"}
}

// Granter grants local X server access to GUI containers of a compose
// project. Grants are keyed by container hostname and persist for the host
// session; there is no revocation path.
type Granter struct {
	Client compose.DockerClient
	Runner compose.CommandRunner
	Out    io.Writer
}

// Grant enumerates the project's containers and runs
// `xhost +local:<hostname>` for every allowlisted GUI service.
// It returns the number of grants performed.
func (g Granter) Grant(ctx context.Context, project string) (int, error) {
	if g.Client == nil {
		return 0, fmt.Errorf("docker client is nil")
	}
	if g.Runner == nil {
		return 0, fmt.Errorf("command runner is nil")
	}

	containers, err := compose.ListProjectContainers(ctx, g.Client, project)
	if err != nil {
		return 0, err
	}

	granted := 0
	for _, ctr := range containers {
		if !IsGUIService(ctr.Service) {
			continue
		}

		inspect, err := g.Client.ContainerInspect(ctx, ctr.ID)
		if err != nil {
			return granted, fmt.Errorf("inspect container %s: %w", ctr.Name, err)
		}
		hostname := ""
		if inspect.Config != nil {
			hostname = strings.TrimSpace(inspect.Config.Hostname)
		}
		if hostname == "" {
			continue
		}

		if err := g.Runner.RunQuiet(ctx, "", "xhost", "+local:"+hostname); err != nil {
			return granted, fmt.Errorf("grant display access for %s: %w", ctr.Service, err)
		}
		granted++
		if g.Out != nil {
			fmt.Fprintf(g.Out, "   display access granted: %s (%s)\n", ctr.Service, hostname)
		}
	}
	return granted, nil
}
