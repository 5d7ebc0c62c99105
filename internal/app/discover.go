// Where: cli/internal/app/discover.go
// What: Entry point discovery and interactive selection.
// Why: Resolve which script to hand to the interpreter when config is silent.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grabdeck/cli/internal/config"
	"github.com/grabdeck/cli/internal/interaction"
)

// entryCandidates are probed in priority order.
var entryCandidates = []string{"app.py", "main.py", "server.py"}

// resolveEntrypoint picks the script to launch: the flag wins, then config,
// then discovery in the app directory. Several discovered candidates trigger
// an interactive selection on a terminal; otherwise priority order decides.
func resolveEntrypoint(cli CLI, settings config.Settings, deps Dependencies) (string, error) {
	if cli.Run.Entrypoint != "" {
		return cli.Run.Entrypoint, nil
	}
	if settings.Entrypoint != "" {
		return settings.Entrypoint, nil
	}

	var found []string
	for _, name := range entryCandidates {
		if _, err := os.Stat(filepath.Join(settings.AppDir, name)); err == nil {
			found = append(found, name)
		}
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("no entry point found in %s (looked for %s)",
			settings.AppDir, strings.Join(entryCandidates, ", "))
	case 1:
		return found[0], nil
	}

	interactive := deps.IsInteractive
	if interactive == nil {
		interactive = func() bool { return interaction.IsTerminal(os.Stdin) }
	}
	if interactive() && deps.Prompter != nil {
		return deps.Prompter.Select("Select entry point", found)
	}
	return found[0], nil
}
