// Where: cli/internal/app/completion.go
// What: Shell completion script generation.
// Why: Complete commands and scenario names in bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/skyfield-robotics/navbox/cli/internal/meta"
	"github.com/skyfield-robotics/navbox/cli/internal/scenario"
)

// CompletionCmd groups the per-shell completion subcommands.
type CompletionCmd struct {
	Bash BashCompletionCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  ZshCompletionCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish FishCompletionCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	BashCompletionCmd struct{}
	ZshCompletionCmd  struct{}
	FishCompletionCmd struct{}
)

var completionCommands = []string{
	"create", "build", "up", "demo", "down", "start", "stop", "logs",
	"expose", "status", "scenarios", "validate", "assets", "init",
	"completion", "version",
}

var scenarioCommands = []string{"create", "build", "up"}

func runCompletionBash(cli CLI, out io.Writer) int {
	name := meta.Slug
	fmt.Fprintf(out, `# bash completion for %s
_%s_complete() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    case "${prev}" in
        %s)
            COMPREPLY=($(compgen -W "%s" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
        assets)
            COMPREPLY=($(compgen -W "pull" -- "${cur}"))
            return
            ;;
    esac
    COMPREPLY=($(compgen -W "%s" -- "${cur}"))
}
complete -F _%s_complete %s
`,
		name, name,
		strings.Join(scenarioCommands, "|"),
		strings.Join(scenario.Names(), " "),
		strings.Join(completionCommands, " "),
		name, name,
	)
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	name := meta.Slug
	fmt.Fprintf(out, `#compdef %s
_%s() {
    local -a commands scenarios
    commands=(%s)
    scenarios=(%s)
    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi
    case "${words[2]}" in
        %s)
            _describe 'scenario' scenarios
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
        assets)
            _values 'subcommand' pull
            ;;
    esac
}
_%s "$@"
`,
		name, name,
		strings.Join(completionCommands, " "),
		strings.Join(scenario.Names(), " "),
		strings.Join(scenarioCommands, "|"),
		name,
	)
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	name := meta.Slug
	for _, command := range completionCommands {
		fmt.Fprintf(out, "complete -c %s -n '__fish_use_subcommand' -a %s\n", name, command)
	}
	for _, command := range scenarioCommands {
		fmt.Fprintf(out, "complete -c %s -n '__fish_seen_subcommand_from %s' -a '%s'\n",
			name, command, strings.Join(scenario.Names(), " "))
	}
	fmt.Fprintf(out, "complete -c %s -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n", name)
	fmt.Fprintf(out, "complete -c %s -n '__fish_seen_subcommand_from assets' -a pull\n", name)
	return 0
}
