package compose

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
)

type fakeDockerClient struct {
	containers []container.Summary
	inspect    map[string]container.InspectResponse
	listErr    error

	stopped []string
	removed []string
	volumes []bool
}

func (f *fakeDockerClient) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.containers, nil
}

func (f *fakeDockerClient) ContainerInspect(_ context.Context, containerID string) (container.InspectResponse, error) {
	resp, ok := f.inspect[containerID]
	if !ok {
		return container.InspectResponse{}, fmt.Errorf("no such container: %s", containerID)
	}
	return resp, nil
}

func (f *fakeDockerClient) ContainerStop(_ context.Context, containerID string, _ container.StopOptions) error {
	f.stopped = append(f.stopped, containerID)
	return nil
}

func (f *fakeDockerClient) ContainerRemove(_ context.Context, containerID string, options container.RemoveOptions) error {
	f.removed = append(f.removed, containerID)
	f.volumes = append(f.volumes, options.RemoveVolumes)
	return nil
}

func projectContainer(id, name, service, state string) container.Summary {
	return container.Summary{
		ID:    id,
		Names: []string{"/" + name},
		State: state,
		Labels: map[string]string{
			ComposeProjectLabel: "navbox",
			ComposeServiceLabel: service,
		},
	}
}
