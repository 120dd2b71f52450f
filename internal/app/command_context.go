// Where: cli/internal/app/command_context.go
// What: Shared context resolution for CLI commands.
// Why: Reduce duplicated repo/autopilot setup across commands.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/skyfield-robotics/navbox/cli/internal/config"
	"github.com/skyfield-robotics/navbox/cli/internal/constants"
	"github.com/skyfield-robotics/navbox/cli/internal/envutil"
	"github.com/skyfield-robotics/navbox/cli/internal/scenario"
	"github.com/skyfield-robotics/navbox/cli/internal/state"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

type commandContext struct {
	Context   state.Context
	Autopilot string
}

func resolveCommandContext(cli CLI, deps Dependencies) (commandContext, error) {
	startDir := strings.TrimSpace(cli.Repo)
	if startDir == "" {
		startDir = deps.WorkDir
	}

	repoDir, err := deps.RepoResolver(startDir)
	if err != nil {
		return commandContext{}, err
	}

	ctx, err := state.ResolveContext(repoDir)
	if err != nil {
		return commandContext{}, err
	}

	return commandContext{
		Context:   ctx,
		Autopilot: resolveAutopilot(cli, ctx),
	}, nil
}

// resolveAutopilot picks the autopilot identifier with the priority:
// flag, NAVBOX_AUTOPILOT, repo manifest, global config, px4 default.
// The value is not validated here; scenario expansion reports unsupported
// identifiers as a printed no-op.
func resolveAutopilot(cli CLI, ctx state.Context) string {
	if value := strings.TrimSpace(cli.Autopilot); value != "" {
		return value
	}
	if value := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixAutopilot)); value != "" {
		return value
	}
	if ctx.HasManifest && strings.TrimSpace(ctx.Manifest.Autopilot) != "" {
		return strings.TrimSpace(ctx.Manifest.Autopilot)
	}
	if value := strings.TrimSpace(config.LoadGlobalConfigOrDefault().Autopilot); value != "" {
		return value
	}
	return scenario.AutopilotPX4
}
