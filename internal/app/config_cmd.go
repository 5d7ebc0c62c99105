// Where: cli/internal/app/config_cmd.go
// What: Config inspection and mutation commands.
// Why: Manage the global public host setting without hand-editing YAML.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/grabdeck/cli/internal/config"
	"github.com/grabdeck/cli/internal/ui"
)

// runConfigShow executes 'config show' and prints the global config values.
func runConfigShow(_ CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	path, cfg, err := config.LoadGlobalConfigOrDefault()
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("⚙️", "Global configuration")
	console.Item("Path", path)
	console.Item("Public host", valueOrUnset(cfg.PublicHost))
	console.Item("Host template", valueOrUnset(cfg.HostTemplate))
	if cfg.Port > 0 {
		console.Item("Port", cfg.Port)
	} else {
		console.Item("Port", fmt.Sprintf("(default %d)", config.DefaultPort))
	}
	console.Item("Entry point", valueOrUnset(cfg.Entrypoint))
	console.Item("Container image", valueOrUnset(cfg.ContainerImage))
	return 0
}

// runConfigSetHost executes 'config set-host <url>' and persists the value.
func runConfigSetHost(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	url := strings.TrimSpace(cli.Config.SetHost.URL)
	if url == "" {
		fmt.Fprintln(out, "public host URL is required")
		return 1
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		fmt.Fprintf(out, "public host must start with http:// or https://: %s\n", url)
		return 1
	}

	path, cfg, err := config.LoadGlobalConfigOrDefault()
	if err != nil {
		return exitWithError(out, err)
	}

	cfg.PublicHost = strings.TrimRight(url, "/")
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	console.Success("Public host set to " + cfg.PublicHost)
	return 0
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}
