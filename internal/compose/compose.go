// Where: cli/internal/compose/compose.go
// What: docker compose command construction for deployment targets.
// Why: Keep every compose invocation in one consistent, testable shape.
package compose

import (
	"context"
	"fmt"
	"strings"
)

// Options carries the shared inputs of every compose invocation: the repo
// root the command runs in, the fixed project name, the ordered compose
// file list, and the explicit service list.
type Options struct {
	RepoDir  string
	Project  string
	Files    []string
	Services []string
}

// CreateProject runs docker compose create for the target services.
func CreateProject(ctx context.Context, runner CommandRunner, opts Options) error {
	args, err := composeArgs(opts)
	if err != nil {
		return err
	}
	args = append(args, "create")
	args = append(args, opts.Services...)
	return runner.Run(ctx, opts.RepoDir, "docker", args...)
}

// BuildOptions extends Options with build-only flags.
type BuildOptions struct {
	Options
	NoCache bool
}

// BuildProject runs docker compose build for the target services.
func BuildProject(ctx context.Context, runner CommandRunner, opts BuildOptions) error {
	args, err := composeArgs(opts.Options)
	if err != nil {
		return err
	}
	args = append(args, "build")
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	args = append(args, opts.Services...)
	return runner.Run(ctx, opts.RepoDir, "docker", args...)
}

// UpOptions extends Options with up-only flags.
type UpOptions struct {
	Options
	Detach  bool
	EnvFile string
}

// UpProject runs docker compose up for the target services.
func UpProject(ctx context.Context, runner CommandRunner, opts UpOptions) error {
	args, err := composeArgs(opts.Options)
	if err != nil {
		return err
	}
	if opts.EnvFile != "" {
		args = append(args, "--env-file", opts.EnvFile)
	}
	args = append(args, "up")
	if opts.Detach {
		args = append(args, "-d")
	}
	args = append(args, opts.Services...)
	return runner.Run(ctx, opts.RepoDir, "docker", args...)
}

// StartProject runs docker compose start across the project.
func StartProject(ctx context.Context, runner CommandRunner, opts Options) error {
	args, err := composeArgs(opts)
	if err != nil {
		return err
	}
	args = append(args, "start")
	args = append(args, opts.Services...)
	return runner.Run(ctx, opts.RepoDir, "docker", args...)
}

// StopProject runs docker compose stop across the project.
func StopProject(ctx context.Context, runner CommandRunner, opts Options) error {
	args, err := composeArgs(opts)
	if err != nil {
		return err
	}
	args = append(args, "stop")
	args = append(args, opts.Services...)
	return runner.Run(ctx, opts.RepoDir, "docker", args...)
}

// LogsOptions extends Options with log streaming flags.
type LogsOptions struct {
	Options
	Follow     bool
	Tail       int
	Timestamps bool
	Service    string
}

// LogsProject runs docker compose logs.
func LogsProject(ctx context.Context, runner CommandRunner, opts LogsOptions) error {
	args, err := composeArgs(opts.Options)
	if err != nil {
		return err
	}
	args = append(args, "logs")
	if opts.Follow {
		args = append(args, "--follow")
	}
	if opts.Tail > 0 {
		args = append(args, "--tail", fmt.Sprintf("%d", opts.Tail))
	}
	if opts.Timestamps {
		args = append(args, "--timestamps")
	}
	if strings.TrimSpace(opts.Service) != "" {
		args = append(args, opts.Service)
	}
	return runner.Run(ctx, opts.RepoDir, "docker", args...)
}

// composeArgs assembles the common `compose -p <project> -f <file>...` prefix.
func composeArgs(opts Options) ([]string, error) {
	if opts.RepoDir == "" {
		return nil, fmt.Errorf("repo dir is required")
	}
	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("at least one compose file is required")
	}

	args := []string{"compose"}
	if opts.Project != "" {
		args = append(args, "-p", opts.Project)
	}
	for _, file := range opts.Files {
		if strings.TrimSpace(file) == "" {
			continue
		}
		args = append(args, "-f", file)
	}
	return args, nil
}
