// Where: cli/internal/app/inspect.go
// What: Read-only commands (status, scenarios, validate, info).
// Why: Surface deployment state without mutating anything.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/skyfield-robotics/navbox/cli/internal/meta"
	"github.com/skyfield-robotics/navbox/cli/internal/scenario"
	"github.com/skyfield-robotics/navbox/cli/internal/ui"
	"github.com/skyfield-robotics/navbox/cli/internal/version"
)

func runStatus(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	containers, err := deps.Lister.List(context.Background(), meta.ComposeProject)
	if err != nil {
		return exitWithError(out, err)
	}

	if len(containers) == 0 {
		console.Info("No containers (run 'navbox up <scenario>')")
		return 0
	}

	console.Header(fmt.Sprintf("Project %s", meta.ComposeProject))
	for _, c := range containers {
		console.Item(c.Service, c.State)
	}
	return 0
}

func runScenarios(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	console.Header("Deployment scenarios")
	for _, sc := range scenario.All() {
		line := sc.Name
		if sc.Requires != "" {
			line += " (requires " + sc.Requires + ")"
		}
		console.ItemPlain(line)
		console.ItemPlain("  services: " + strings.Join(sc.Services, ", "))
		if len(sc.Overrides) > 0 {
			console.ItemPlain("  overrides: " + strings.Join(sc.Overrides, ", "))
		}
	}
	console.ItemPlain("")
	console.ItemPlain("autopilots: " + strings.Join(scenario.Autopilots(), ", "))
	return 0
}

// runValidate checks every scenario against the merged compose model:
// each expanded service must exist in the model built from the scenario's
// file list. An unsupported autopilot identifier is reported once and the
// autopilot-bearing scenarios are skipped.
func runValidate(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx := context.Background()
	failures := 0
	unsupportedReported := false

	for _, sc := range scenario.All() {
		t, err := planTarget(ctxInfo, sc)
		if err != nil {
			var unsupported *scenario.UnsupportedAutopilotError
			if errors.As(err, &unsupported) {
				if !unsupportedReported {
					console.Warn(unsupported.Error())
					unsupportedReported = true
				}
				continue
			}
			console.Warn(fmt.Sprintf("%s: %v", sc.Name, err))
			failures++
			continue
		}

		missing, err := deps.Checker.Check(ctx, t.Request.Project, t.Request.Files, t.Request.Services)
		if err != nil {
			console.Warn(fmt.Sprintf("%s: %v", sc.Name, err))
			failures++
			continue
		}
		if len(missing) > 0 {
			console.Warn(fmt.Sprintf("%s: missing services: %s", sc.Name, strings.Join(missing, ", ")))
			failures++
			continue
		}
		console.Success(sc.Name)
	}

	if failures > 0 {
		return 1
	}
	return 0
}

// runInfo is the zero-argument view: a short orientation page.
func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	console.Header(fmt.Sprintf("%s %s", meta.AppName, version.GetVersion()))
	console.ItemPlain("Drone navigation deployment CLI")

	if ctxInfo, err := resolveCommandContext(cli, deps); err == nil {
		console.Item("Repo", ctxInfo.Context.RepoDir)
		console.Item("Autopilot", ctxInfo.Autopilot)
		if ctxInfo.Context.HasManifest {
			console.Item("Manifest", ctxInfo.Context.ManifestPath)
		}
	} else {
		console.Warn(err.Error())
	}

	console.ItemPlain("")
	console.ItemPlain("navbox scenarios       list deployment scenarios")
	console.ItemPlain("navbox up <scenario>   start a scenario")
	console.ItemPlain("navbox --help          full command reference")
	return 0
}
