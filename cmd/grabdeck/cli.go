// Where: cli/cmd/grabdeck/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/grabdeck/cli/internal/app"
	"github.com/grabdeck/cli/internal/container"
	"github.com/grabdeck/cli/internal/hostaddr"
	"github.com/grabdeck/cli/internal/interaction"
	"github.com/grabdeck/cli/internal/launcher"
)

var newDockerClient = container.NewDockerClient

// buildDependencies constructs all runtime dependencies required by the CLI:
// the process runner, the lazy Docker client factory, host detection, the
// readiness waiter, and interactive primitives.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:           os.Stdout,
		Runner:        launcher.ExecRunner{},
		DockerClient:  func() (container.DockerClient, error) { return newDockerClient() },
		Prompter:      interaction.HuhPrompter{},
		Waiter:        app.NewServerWaiter(),
		DetectIP:      hostaddr.DetectLANIP,
		Pause:         interaction.Pause,
		IsInteractive: func() bool { return interaction.IsTerminal(os.Stdin) },
	}
}
