// Where: cli/internal/app/init.go
// What: Starter manifest generation.
// Why: Give new deployments a commented navbox.yaml to edit.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/skyfield-robotics/navbox/cli/internal/manifest"
	"github.com/skyfield-robotics/navbox/cli/internal/scenario"
	"github.com/skyfield-robotics/navbox/cli/internal/ui"
)

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	// The starter must validate against the manifest schema, so an
	// unsupported identifier is refused up front instead of being written
	// into a manifest that would fail every later command.
	if !scenario.Supported(ctxInfo.Autopilot) {
		console.Warn((&scenario.UnsupportedAutopilotError{Autopilot: ctxInfo.Autopilot}).Error())
		return 0
	}

	path := ctxInfo.Context.ManifestPath
	if _, err := os.Stat(path); err == nil && !cli.Init.Force {
		return exitWithError(out, fmt.Errorf("%s already exists (use --force to overwrite)", path))
	}

	payload, err := manifest.RenderStarter(manifest.StarterInput{
		Autopilot: ctxInfo.Autopilot,
		Scenarios: scenario.Names(),
	})
	if err != nil {
		return exitWithError(out, err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return exitWithError(out, err)
	}

	console.Success(fmt.Sprintf("Wrote %s", path))
	return 0
}
