// Where: cli/internal/app/lifecycle.go
// What: Project-wide lifecycle commands (down, start, stop, logs).
// Why: Address the whole compose project without scenario parameters.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/skyfield-robotics/navbox/cli/internal/meta"
	"github.com/skyfield-robotics/navbox/cli/internal/ui"
)

func runDown(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	if cli.Down.Volumes && !cli.Down.Yes {
		confirmed, err := deps.Prompter.Confirm("Remove named volumes? Persistent data will be lost.")
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			console.Info("Aborted")
			return 0
		}
	}

	if err := deps.Downer.Down(context.Background(), meta.ComposeProject, cli.Down.Volumes); err != nil {
		return exitWithError(out, err)
	}

	console.Success("Project removed")
	return 0
}

func runStart(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	req, err := projectRequest(ctxInfo)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := deps.Composer.Start(context.Background(), req); err != nil {
		return exitWithError(out, err)
	}

	console.Success("Project started")
	return 0
}

func runStop(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	req, err := projectRequest(ctxInfo)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := deps.Composer.Stop(context.Background(), req); err != nil {
		return exitWithError(out, err)
	}

	console.Success("Project stopped")
	return 0
}

func runLogs(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	req, err := projectRequest(ctxInfo)
	if err != nil {
		return exitWithError(out, err)
	}

	params := LogParams{
		Follow:     cli.Logs.Follow,
		Tail:       cli.Logs.Tail,
		Timestamps: cli.Logs.Timestamps,
		Service:    cli.Logs.Service,
	}
	if err := deps.Composer.Logs(context.Background(), req, params); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

func runExpose(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	granted, err := deps.Exposer.Expose(context.Background(), meta.ComposeProject)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Success(fmt.Sprintf("Granted display access to %d container(s)", granted))
	return 0
}
