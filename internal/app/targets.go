// Where: cli/internal/app/targets.go
// What: Scenario target commands (create, build, up, demo).
// Why: Drive parameterized compose invocations through the target planner.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/skyfield-robotics/navbox/cli/internal/scenario"
	"github.com/skyfield-robotics/navbox/cli/internal/ui"
)

// reportUnsupported prints a single diagnostic when the error is an
// unsupported autopilot identifier. Unsupported identifiers are a printed
// no-op, not a failure, so the reported exit code is 0.
func reportUnsupported(console *ui.Console, err error) (int, bool) {
	var unsupported *scenario.UnsupportedAutopilotError
	if errors.As(err, &unsupported) {
		console.Warn(unsupported.Error())
		return 0, true
	}
	return 0, false
}

func lookupScenario(name string) (scenario.Scenario, error) {
	sc, ok := scenario.Lookup(name)
	if !ok {
		return scenario.Scenario{}, fmt.Errorf("unknown scenario: %s (run 'navbox scenarios' for the list)", name)
	}
	return sc, nil
}

func runCreate(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	sc, err := lookupScenario(cli.Create.Scenario)
	if err != nil {
		return exitWithError(out, err)
	}

	targets, err := planChain(ctxInfo, sc)
	if err != nil {
		if code, handled := reportUnsupported(console, err); handled {
			return code
		}
		return exitWithError(out, err)
	}

	ctx := context.Background()
	for _, t := range targets {
		console.Info(fmt.Sprintf("Creating %s containers", t.Scenario.Name))
		if err := deps.Composer.Create(ctx, t.Request); err != nil {
			return exitWithError(out, err)
		}
	}

	console.Success(fmt.Sprintf("Created %s", sc.Name))
	return 0
}

func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx := context.Background()

	// Bare build: all services in the base compose file.
	if cli.Build.Scenario == "" {
		req, err := projectRequest(ctxInfo)
		if err != nil {
			return exitWithError(out, err)
		}
		console.Info("Building all images")
		if err := deps.Composer.Build(ctx, req, cli.Build.NoCache); err != nil {
			return exitWithError(out, err)
		}
		console.Success("Build complete")
		return 0
	}

	sc, err := lookupScenario(cli.Build.Scenario)
	if err != nil {
		return exitWithError(out, err)
	}

	targets, err := planChain(ctxInfo, sc)
	if err != nil {
		if code, handled := reportUnsupported(console, err); handled {
			return code
		}
		return exitWithError(out, err)
	}

	for _, t := range targets {
		console.Info(fmt.Sprintf("Building %s images", t.Scenario.Name))
		if err := deps.Composer.Build(ctx, t.Request, cli.Build.NoCache); err != nil {
			return exitWithError(out, err)
		}
	}

	console.Success("Build complete")
	return 0
}

func runUp(cli CLI, deps Dependencies, out io.Writer) int {
	return upScenario(cli, deps, out, cli.Up.Scenario, cli.Up.Build, cli.Up.Detach)
}

// runDemo brings up the self-contained demo scenario. It is `up demo` with
// a pointer to the asset bundle the demo services mount.
func runDemo(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	if deps.Assets.DestDir != nil {
		if dir, err := deps.Assets.DestDir(); err == nil {
			console.Info(fmt.Sprintf("Demo assets expected in %s (run 'navbox assets pull' if missing)", dir))
		}
	}
	return upScenario(cli, deps, out, "demo", false, true)
}

// upScenario runs a scenario's full bring-up sequence. Containers for the
// whole chain are created before anything starts so display grants can be
// issued before the first GUI process launches.
func upScenario(cli CLI, deps Dependencies, out io.Writer, name string, build, detach bool) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	sc, err := lookupScenario(name)
	if err != nil {
		return exitWithError(out, err)
	}

	targets, err := planChain(ctxInfo, sc)
	if err != nil {
		if code, handled := reportUnsupported(console, err); handled {
			return code
		}
		return exitWithError(out, err)
	}

	ctx := context.Background()

	if build {
		for _, t := range targets {
			console.Info(fmt.Sprintf("Building %s images", t.Scenario.Name))
			if err := deps.Composer.Build(ctx, t.Request, false); err != nil {
				return exitWithError(out, err)
			}
		}
	}

	for _, t := range targets {
		console.Info(fmt.Sprintf("Creating %s containers", t.Scenario.Name))
		if err := deps.Composer.Create(ctx, t.Request); err != nil {
			return exitWithError(out, err)
		}
	}

	granted, err := deps.Exposer.Expose(ctx, ctxInfo.Context.ComposeProject)
	if err != nil {
		return exitWithError(out, err)
	}
	if granted > 0 {
		console.Info(fmt.Sprintf("Granted display access to %d container(s)", granted))
	}

	params := UpParams{Detach: detach, EnvFile: cli.EnvFile}
	for _, t := range targets {
		console.Info(fmt.Sprintf("Starting %s", t.Scenario.Name))
		if err := deps.Composer.Up(ctx, t.Request, params); err != nil {
			return exitWithError(out, err)
		}
	}

	console.Success(fmt.Sprintf("%s is up", sc.Name))
	console.ItemPlain("navbox status   show containers")
	console.ItemPlain("navbox logs -f  follow logs")
	console.ItemPlain("navbox down     tear everything down")
	return 0
}
