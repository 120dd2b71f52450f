// Where: cli/cmd/navbox/cli.go
// What: Production dependency wiring.
// Why: Assemble real compose, Docker, and S3 backends for app.Run.
package main

import (
	"fmt"
	"os"

	"github.com/skyfield-robotics/navbox/cli/internal/app"
	"github.com/skyfield-robotics/navbox/cli/internal/assets"
	"github.com/skyfield-robotics/navbox/cli/internal/compose"
	"github.com/skyfield-robotics/navbox/cli/internal/interaction"
)

func run(args []string) int {
	deps, closer, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closer()

	return app.Run(args, deps)
}

func buildDependencies() (app.Dependencies, func(), error) {
	workDir, err := os.Getwd()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	dockerClient, err := compose.NewDockerClient()
	if err != nil {
		return app.Dependencies{}, nil, fmt.Errorf("docker client: %w", err)
	}

	runner := compose.ExecRunner{}

	deps := app.Dependencies{
		WorkDir:  workDir,
		Out:      os.Stdout,
		Prompter: interaction.HuhPrompter{},
		Composer: app.NewComposer(runner),
		Downer:   app.NewDowner(dockerClient),
		Exposer:  app.NewExposer(dockerClient, runner, os.Stdout),
		Lister:   app.NewLister(dockerClient),
		Checker:  app.NewChecker(),
		Assets: app.AssetsDeps{
			NewFetcher: assets.NewFetcher,
			DestDir:    assets.DestDir,
		},
	}

	closer := func() {
		if c, ok := dockerClient.(interface{ Close() error }); ok {
			_ = c.Close()
		}
	}
	return deps, closer, nil
}
