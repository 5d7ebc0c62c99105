// Where: cli/internal/app/config_cmd_test.go
// What: Tests for config show/set-host commands.
// Why: Ensure the public host persists and bad URLs are rejected.
package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grabdeck/cli/internal/config"
)

func TestConfigSetHostPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("GRABDECK_CONFIG_PATH", path)

	var out bytes.Buffer
	code := Run([]string{"config", "set-host", "http://192.168.0.132:5000/"}, Dependencies{Out: &out})
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, out.String())
	}

	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PublicHost != "http://192.168.0.132:5000" {
		t.Fatalf("public host = %s", cfg.PublicHost)
	}
}

func TestConfigSetHostRejectsBadScheme(t *testing.T) {
	t.Setenv("GRABDECK_CONFIG_PATH", filepath.Join(t.TempDir(), "config.yaml"))

	var out bytes.Buffer
	code := Run([]string{"config", "set-host", "192.168.0.132:5000"}, Dependencies{Out: &out})
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "http://") {
		t.Fatalf("expected scheme hint, got: %s", out.String())
	}
}

func TestConfigShowDisplaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("GRABDECK_CONFIG_PATH", path)
	if err := config.SaveGlobalConfig(path, config.GlobalConfig{
		Version:    1,
		PublicHost: "http://192.168.0.132:5000",
		Port:       5000,
	}); err != nil {
		t.Fatalf("save config: %v", err)
	}

	var out bytes.Buffer
	code := Run([]string{"config", "show"}, Dependencies{Out: &out})
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "http://192.168.0.132:5000") {
		t.Fatalf("public host missing from output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("config path missing from output:\n%s", out.String())
	}
}
