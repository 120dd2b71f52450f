// Where: cli/internal/interaction/interaction.go
// What: Interactive confirmation prompts using the huh library.
// Why: Guard destructive commands behind an explicit confirmation.
package interaction

import "github.com/charmbracelet/huh"

// Prompter asks the user yes/no questions.
type Prompter interface {
	Confirm(title string) (bool, error)
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

func (HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
