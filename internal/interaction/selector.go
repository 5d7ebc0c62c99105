// Where: cli/internal/interaction/selector.go
// What: Interactive selection helpers using the huh library.
// Why: Provide keyboard-based selection when several entry points are found.
package interaction

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return selected, nil
}
