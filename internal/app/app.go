// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/skyfield-robotics/navbox/cli/internal/config"
	"github.com/skyfield-robotics/navbox/cli/internal/interaction"
	"github.com/skyfield-robotics/navbox/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of the compose and Docker subsystems.
type Dependencies struct {
	WorkDir      string
	Out          io.Writer
	RepoResolver func(string) (string, error)
	Prompter     interaction.Prompter
	Composer     Composer
	Downer       Downer
	Exposer      Exposer
	Lister       ContainerLister
	Checker      ScenarioChecker
	Assets       AssetsDeps
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Autopilot string `short:"a" help:"Autopilot identifier (px4 or ardupilot)"`
	Repo      string `short:"r" help:"Path to the deployment repo (default: discovered)"`
	EnvFile   string `name:"env-file" help:"Path to .env file passed to compose up"`

	Create     CreateCmd     `cmd:"" help:"Create scenario containers without starting them"`
	Build      BuildCmd      `cmd:"" help:"Build images"`
	Up         UpCmd         `cmd:"" help:"Start a deployment scenario"`
	Demo       DemoCmd       `cmd:"" help:"Start the demo scenario"`
	Down       DownCmd       `cmd:"" help:"Stop and remove all project containers"`
	Start      StartCmd      `cmd:"" help:"Start existing project containers"`
	Stop       StopCmd       `cmd:"" help:"Stop project containers (preserve state)"`
	Logs       LogsCmd       `cmd:"" help:"View logs"`
	Expose     ExposeCmd     `cmd:"" help:"Grant display access to GUI containers"`
	Status     StatusCmd     `cmd:"" help:"Show project containers"`
	Scenarios  ScenariosCmd  `cmd:"" help:"List deployment scenarios"`
	Validate   ValidateCmd   `cmd:"" help:"Check scenarios against the compose model"`
	Assets     AssetsCmd     `cmd:"" help:"Manage demo assets"`
	Init       InitCmd       `cmd:"" help:"Write a starter deployment manifest"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	CreateCmd struct {
		Scenario string `arg:"" help:"Scenario name"`
	}
	BuildCmd struct {
		Scenario string `arg:"" optional:"" help:"Scenario name (default: all services)"`
		NoCache  bool   `name:"no-cache" help:"Do not use cache when building images"`
	}
	UpCmd struct {
		Scenario string `arg:"" help:"Scenario name"`
		Build    bool   `help:"Rebuild images before starting"`
		Detach   bool   `short:"d" default:"true" help:"Run in background"`
	}
	DemoCmd struct{}
	DownCmd struct {
		Volumes bool `short:"v" help:"Remove named volumes"`
		Yes     bool `short:"y" help:"Skip confirmation prompt"`
	}
	StartCmd struct{}
	StopCmd  struct{}
	LogsCmd  struct {
		Service    string `arg:"" optional:"" help:"Service name (default: all)"`
		Follow     bool   `short:"f" help:"Follow logs"`
		Tail       int    `help:"Tail the latest N lines"`
		Timestamps bool   `help:"Show timestamps"`
	}
	ExposeCmd    struct{}
	StatusCmd    struct{}
	ScenariosCmd struct{}
	ValidateCmd  struct{}
	AssetsCmd    struct {
		Pull AssetsPullCmd `cmd:"" help:"Download the demo asset bundle"`
	}
	AssetsPullCmd struct{}
	InitCmd       struct {
		Force bool `help:"Overwrite an existing manifest"`
	}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	if deps.RepoResolver == nil {
		deps.RepoResolver = config.ResolveRepoRoot
	}

	if len(args) == 0 {
		return runInfo(CLI{}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in the work dir.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if deps.WorkDir != "" {
		envPath := filepath.Join(deps.WorkDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				fmt.Fprintf(out, "Warning: failed to load %s: %v\n", envPath, err)
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"demo":            runDemo,
		"down":            runDown,
		"start":           runStart,
		"stop":            runStop,
		"expose":          runExpose,
		"status":          runStatus,
		"scenarios":       runScenarios,
		"validate":        runValidate,
		"assets pull":     runAssetsPull,
		"init":            runInit,
		"build":           runBuild,
		"logs":            runLogs,
		"completion bash": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "create", handler: runCreate},
		{prefix: "build", handler: runBuild},
		{prefix: "up", handler: runUp},
		{prefix: "logs", handler: runLogs},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}
