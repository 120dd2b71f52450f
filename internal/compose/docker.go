// Where: cli/internal/compose/docker.go
// What: Docker SDK helpers for project containers.
// Why: Provide scoped, label-filtered queries over the project namespace.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
)

const (
	// ComposeProjectLabel identifies the compose project a container belongs to.
	ComposeProjectLabel = "com.docker.compose.project"
	// ComposeServiceLabel carries the declared compose service name.
	ComposeServiceLabel = "com.docker.compose.service"
)

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
}

// ContainerInfo describes one container in the project namespace.
type ContainerInfo struct {
	ID      string
	Name    string
	Service string
	State   string
}

// ListProjectContainers returns container information for all containers
// belonging to the specified compose project.
func ListProjectContainers(ctx context.Context, client DockerClient, project string) ([]ContainerInfo, error) {
	labelFilter := filters.NewArgs()
	labelFilter.Add("label", fmt.Sprintf("%s=%s", ComposeProjectLabel, project))

	containers, err := client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: labelFilter,
	})
	if err != nil {
		return nil, err
	}

	result := make([]ContainerInfo, 0, len(containers))
	for _, ctr := range containers {
		if ctr.Labels == nil || ctr.Labels[ComposeProjectLabel] != project {
			continue
		}

		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}

		result = append(result, ContainerInfo{
			ID:      ctr.ID,
			Name:    name,
			Service: ctr.Labels[ComposeServiceLabel],
			State:   ctr.State,
		})
	}
	return result, nil
}
