// Where: cli/internal/app/env_cmd.go
// What: The env command: show the resolved launch environment.
// Why: Let users inspect what run would do without starting the server.
package app

import (
	"io"

	"github.com/grabdeck/cli/internal/hostaddr"
	"github.com/grabdeck/cli/internal/ui"
	"github.com/grabdeck/cli/internal/venv"
)

// runEnvShow prints the environment a run would launch with: public host,
// virtualenv, interpreter, and entry point.
func runEnvShow(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	settings, err := resolveSettings(cli)
	if err != nil {
		return exitWithError(out, err)
	}

	resolver := hostaddr.Resolver{DetectIP: deps.DetectIP}
	publicHost, err := resolver.Resolve(settings.PublicHost, settings.HostTemplate, settings.Port)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🌐", "Launch environment")
	console.Item("App dir", settings.AppDir)
	console.Item("PUBLIC_HOST", publicHost)
	console.Item("Port", settings.Port)

	active := venv.Discover(settings.AppDir, settings.Venv)
	if active != nil {
		console.Item("Virtualenv", active.Dir)
	} else {
		console.Item("Virtualenv", "(none)")
	}

	if interp, err := venv.Interpreter(active); err == nil {
		console.Item("Interpreter", interp)
	} else {
		console.Item("Interpreter", "(not found)")
	}

	if entry, err := resolveEntrypoint(cli, settings, deps); err == nil {
		console.Item("Entry point", entry)
	} else {
		console.Item("Entry point", "(not found)")
	}

	return 0
}
