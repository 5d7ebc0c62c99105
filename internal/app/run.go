// Where: cli/internal/app/run.go
// What: The run command: activate, assign, spawn, pause.
// Why: Keep the whole launch sequence in one handler for a readable flow.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/grabdeck/cli/internal/config"
	"github.com/grabdeck/cli/internal/constants"
	"github.com/grabdeck/cli/internal/container"
	"github.com/grabdeck/cli/internal/envutil"
	"github.com/grabdeck/cli/internal/hostaddr"
	"github.com/grabdeck/cli/internal/launcher"
	"github.com/grabdeck/cli/internal/ui"
	"github.com/grabdeck/cli/internal/venv"
)

// resolveSettings merges global and project config for the target app dir.
func resolveSettings(cli CLI) (config.Settings, error) {
	dir := appDir(cli)
	_, global, err := config.LoadGlobalConfigOrDefault()
	if err != nil {
		return config.Settings{}, err
	}
	project, err := config.LoadProjectConfig(dir)
	if err != nil {
		return config.Settings{}, err
	}
	return config.Resolve(dir, global, project), nil
}

// runRun executes the 'run' command: resolve the environment, launch the
// server synchronously, and pause before returning the terminal.
func runRun(cli CLI, deps Dependencies, out io.Writer) (code int) {
	console := ui.New(out)

	// The pause happens on every exit path, so trailing output stays
	// visible no matter how the run ended.
	skipPause := cli.Run.NoPause ||
		strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixNoPause)) != ""
	defer func() {
		if skipPause || deps.Pause == nil {
			return
		}
		_ = deps.Pause(out)
	}()

	settings, err := resolveSettings(cli)
	if err != nil {
		return exitWithError(out, err)
	}

	if settings.EnvFile != "" && cli.EnvFile == "" {
		path := settings.EnvFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(settings.AppDir, path)
		}
		if err := godotenv.Load(path); err != nil {
			console.Warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
	}

	resolver := hostaddr.Resolver{DetectIP: deps.DetectIP}
	publicHost, err := resolver.Resolve(settings.PublicHost, settings.HostTemplate, settings.Port)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🚀", "Launching server")
	console.Item("App dir", settings.AppDir)
	console.Item("Public host", publicHost)

	if cli.Run.Wait && deps.Waiter != nil {
		waiter := deps.Waiter
		go func() {
			if err := waiter.Wait(publicHost); err != nil {
				console.Warn(fmt.Sprintf("server not ready: %v", err))
				return
			}
			console.Success("Server ready at " + publicHost)
		}()
	}

	if cli.Run.Container {
		code = runContainer(cli, deps, settings, publicHost, console, out)
	} else {
		code = runLocal(cli, deps, settings, publicHost, console, out)
	}
	return code
}

// runLocal launches the entry point through the resolved interpreter.
func runLocal(
	cli CLI,
	deps Dependencies,
	settings config.Settings,
	publicHost string,
	console *ui.Console,
	out io.Writer,
) int {
	active := venv.Discover(settings.AppDir, settings.Venv)
	if active != nil {
		console.Item("Virtualenv", active.Dir)
	}

	entry, err := resolveEntrypoint(cli, settings, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	interp, err := venv.Interpreter(active)
	if err != nil {
		return exitWithError(out, fmt.Errorf("no python interpreter found: %w", err))
	}
	console.Item("Entry point", entry)
	console.Item("Interpreter", interp)
	console.Blank()

	_, err = launcher.Launch(context.Background(), deps.Runner, launcher.Spec{
		AppDir:      settings.AppDir,
		Interpreter: interp,
		Entrypoint:  entry,
		EnvUpdates:  launcher.BuildEnvUpdates(active, publicHost),
	})
	if err != nil {
		return exitWithError(out, err)
	}

	console.Blank()
	console.Info("Server stopped.")
	return 0
}

// runContainer launches the server image through the Docker SDK.
func runContainer(
	_ CLI,
	deps Dependencies,
	settings config.Settings,
	publicHost string,
	console *ui.Console,
	out io.Writer,
) int {
	factory := deps.DockerClient
	if factory == nil {
		factory = container.NewDockerClient
	}
	client, err := factory()
	if err != nil {
		return exitWithError(out, err)
	}
	if closer, ok := client.(io.Closer); ok {
		defer closer.Close()
	}

	console.Item("Image", settings.ContainerImage)
	console.Blank()

	_, err = container.RunServer(context.Background(), client, container.RunOptions{
		Image:      settings.ContainerImage,
		Port:       settings.Port,
		PublicHost: publicHost,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	console.Blank()
	console.Info("Server stopped.")
	return 0
}
