// Where: cli/internal/app/adapters.go
// What: Production implementations of the command handler ports.
// Why: Bridge handlers to the compose and display packages.
package app

import (
	"context"
	"io"

	"github.com/skyfield-robotics/navbox/cli/internal/compose"
	"github.com/skyfield-robotics/navbox/cli/internal/display"
)

// NewComposer returns a Composer backed by the docker compose CLI.
func NewComposer(runner compose.CommandRunner) Composer {
	return composeAdapter{runner: runner}
}

type composeAdapter struct {
	runner compose.CommandRunner
}

func (a composeAdapter) options(req ComposeRequest) compose.Options {
	return compose.Options{
		RepoDir:  req.RepoDir,
		Project:  req.Project,
		Files:    req.Files,
		Services: req.Services,
	}
}

func (a composeAdapter) Create(ctx context.Context, req ComposeRequest) error {
	return compose.CreateProject(ctx, a.runner, a.options(req))
}

func (a composeAdapter) Build(ctx context.Context, req ComposeRequest, noCache bool) error {
	return compose.BuildProject(ctx, a.runner, compose.BuildOptions{
		Options: a.options(req),
		NoCache: noCache,
	})
}

func (a composeAdapter) Up(ctx context.Context, req ComposeRequest, params UpParams) error {
	return compose.UpProject(ctx, a.runner, compose.UpOptions{
		Options: a.options(req),
		Detach:  params.Detach,
		EnvFile: params.EnvFile,
	})
}

func (a composeAdapter) Start(ctx context.Context, req ComposeRequest) error {
	return compose.StartProject(ctx, a.runner, a.options(req))
}

func (a composeAdapter) Stop(ctx context.Context, req ComposeRequest) error {
	return compose.StopProject(ctx, a.runner, a.options(req))
}

func (a composeAdapter) Logs(ctx context.Context, req ComposeRequest, params LogParams) error {
	return compose.LogsProject(ctx, a.runner, compose.LogsOptions{
		Options:    a.options(req),
		Follow:     params.Follow,
		Tail:       params.Tail,
		Timestamps: params.Timestamps,
		Service:    params.Service,
	})
}

// NewDowner returns a Downer backed by the Docker SDK.
func NewDowner(client compose.DockerClient) Downer {
	return downAdapter{client: client}
}

type downAdapter struct {
	client compose.DockerClient
}

func (a downAdapter) Down(ctx context.Context, project string, removeVolumes bool) error {
	return compose.DownProject(ctx, a.client, project, removeVolumes)
}

// NewExposer returns an Exposer granting X server access via xhost.
func NewExposer(client compose.DockerClient, runner compose.CommandRunner, out io.Writer) Exposer {
	return exposeAdapter{client: client, runner: runner, out: out}
}

type exposeAdapter struct {
	client compose.DockerClient
	runner compose.CommandRunner
	out    io.Writer
}

func (a exposeAdapter) Expose(ctx context.Context, project string) (int, error) {
	granter := display.Granter{Client: a.client, Runner: a.runner, Out: a.out}
	return granter.Grant(ctx, project)
}

// NewLister returns a ContainerLister backed by the Docker SDK.
func NewLister(client compose.DockerClient) ContainerLister {
	return listAdapter{client: client}
}

type listAdapter struct {
	client compose.DockerClient
}

func (a listAdapter) List(ctx context.Context, project string) ([]compose.ContainerInfo, error) {
	return compose.ListProjectContainers(ctx, a.client, project)
}

// NewChecker returns a ScenarioChecker backed by the compose-go loader.
func NewChecker() ScenarioChecker {
	return checkAdapter{}
}

type checkAdapter struct{}

func (checkAdapter) Check(ctx context.Context, project string, files, services []string) ([]string, error) {
	model, err := compose.LoadModel(ctx, project, files)
	if err != nil {
		return nil, err
	}
	return compose.MissingServices(model, services), nil
}
