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

	"github.com/grabdeck/cli/internal/config"
	"github.com/grabdeck/cli/internal/container"
	"github.com/grabdeck/cli/internal/interaction"
	"github.com/grabdeck/cli/internal/launcher"
	"github.com/grabdeck/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	Out           io.Writer
	Runner        launcher.CommandRunner
	DockerClient  DockerClientFactory
	Prompter      interaction.Prompter
	Waiter        ServerWaiter
	DetectIP      func() (string, error)
	Pause         func(io.Writer) error
	IsInteractive func() bool
}

// DockerClientFactory constructs a Docker client on demand, so local-mode
// runs never touch the Docker socket.
type DockerClientFactory func() (container.DockerClient, error)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Dir     string     `short:"C" name:"dir" help:"App directory (default: current directory)"`
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	Run     RunCmd     `cmd:"" help:"Launch the server"`
	Env     EnvCmd     `cmd:"" help:"Show the resolved launch environment"`
	Config  ConfigCmd  `cmd:"" name:"config" help:"Manage configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// RunCmd defines the run command flags.
	RunCmd struct {
		Wait       bool   `short:"w" help:"Announce the URL once the server health endpoint responds"`
		Container  bool   `help:"Run the server image via Docker instead of a local interpreter"`
		NoPause    bool   `name:"no-pause" help:"Skip the final key-press pause"`
		Entrypoint string `help:"Entry point script (default: from config or discovery)"`
	}

	EnvCmd struct{}

	ConfigCmd struct {
		Show    ConfigShowCmd    `cmd:"" help:"Show global configuration"`
		SetHost ConfigSetHostCmd `cmd:"" name:"set-host" help:"Set the public host URL"`
	}

	ConfigShowCmd    struct{}
	ConfigSetHostCmd struct {
		URL string `arg:"" help:"Public base URL, e.g. http://192.168.0.132:5000"`
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

	// Handle no arguments: show current location and help
	if len(args) == 0 {
		return runNoArgs(deps, out)
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

	loadEnvFile(cli, out)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"run":         runRun,
		"env":         runEnvShow,
		"config show": runConfigShow,
		"version":     func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	if strings.HasPrefix(command, "config set-host") {
		return runConfigSetHost(cli, deps, out), true
	}

	return 1, false
}

// loadEnvFile loads an explicit env file, or the app directory's .env when
// one exists. Load failures are warnings: the launcher still starts.
func loadEnvFile(cli CLI, out io.Writer) {
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
		return
	}

	candidate := filepath.Join(appDir(cli), ".env")
	if _, err := os.Stat(candidate); err == nil {
		if err := godotenv.Load(candidate); err != nil {
			fmt.Fprintf(out, "Warning: failed to load %s: %v\n", candidate, err)
		}
	}
}

// appDir resolves the target app directory from the global flag,
// defaulting to the current working directory.
func appDir(cli CLI) string {
	if cli.Dir != "" {
		if abs, err := filepath.Abs(cli.Dir); err == nil {
			return abs
		}
		return cli.Dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// runNoArgs shows the resolved app directory and a usage hint.
func runNoArgs(_ Dependencies, out io.Writer) int {
	wd, err := os.Getwd()
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintf(out, "App directory: %s\n", wd)
	fmt.Fprintln(out, "Usage: grabdeck <run|env|config|version> [flags]")
	return 0
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
