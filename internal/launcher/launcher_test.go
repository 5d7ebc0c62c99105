// Where: cli/internal/launcher/launcher_test.go
// What: Tests for the launch pipeline.
// Why: Verify env construction ordering and zero-argument child invocation.
package launcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grabdeck/cli/internal/venv"
)

// fakeRunner records the launch request instead of spawning a process.
type fakeRunner struct {
	dir      string
	env      []string
	name     string
	args     []string
	exitCode int
	err      error
}

func (f *fakeRunner) Run(_ context.Context, dir string, env []string, name string, args ...string) (int, error) {
	f.dir = dir
	f.env = env
	f.name = name
	f.args = args
	return f.exitCode, f.err
}

func envValue(env []string, key string) (string, bool) {
	prefix := key + "="
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			return strings.TrimPrefix(entry, prefix), true
		}
	}
	return "", false
}

func TestBuildEnvUpdatesWithoutVenv(t *testing.T) {
	updates := BuildEnvUpdates(nil, "http://192.168.0.132:5000")
	if updates["PUBLIC_HOST"] != "http://192.168.0.132:5000" {
		t.Fatalf("PUBLIC_HOST = %s", updates["PUBLIC_HOST"])
	}
	if _, ok := updates["VIRTUAL_ENV"]; ok {
		t.Fatal("VIRTUAL_ENV should not be set without a venv")
	}
}

func TestBuildEnvUpdatesWithVenv(t *testing.T) {
	appDir := t.TempDir()
	binDir := filepath.Join(appDir, "venv", "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "activate"), nil, 0o644); err != nil {
		t.Fatalf("write activate: %v", err)
	}
	t.Setenv("PATH", "/usr/bin")

	active := venv.Discover(appDir, "")
	if active == nil {
		t.Fatal("venv not discovered")
	}

	updates := BuildEnvUpdates(active, "http://192.168.0.132:5000")
	if updates["VIRTUAL_ENV"] != active.Dir {
		t.Fatalf("VIRTUAL_ENV = %s", updates["VIRTUAL_ENV"])
	}
	if !strings.HasPrefix(updates["PATH"], binDir) {
		t.Fatalf("venv bin dir not first on PATH: %s", updates["PATH"])
	}
	if updates["PUBLIC_HOST"] != "http://192.168.0.132:5000" {
		t.Fatalf("PUBLIC_HOST = %s", updates["PUBLIC_HOST"])
	}
}

func TestLaunchInvokesEntrypointWithNoArguments(t *testing.T) {
	runner := &fakeRunner{exitCode: 0}
	code, err := Launch(context.Background(), runner, Spec{
		AppDir:      "/apps/grab",
		Interpreter: "/usr/bin/python3",
		Entrypoint:  "app.py",
		EnvUpdates:  map[string]string{"PUBLIC_HOST": "http://192.168.0.132:5000"},
	})
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if runner.name != "/usr/bin/python3" {
		t.Fatalf("interpreter = %s", runner.name)
	}
	if len(runner.args) != 1 || runner.args[0] != "app.py" {
		t.Fatalf("child must get only the entry point, got %v", runner.args)
	}
	if runner.dir != "/apps/grab" {
		t.Fatalf("dir = %s", runner.dir)
	}
	if got, ok := envValue(runner.env, "PUBLIC_HOST"); !ok || got != "http://192.168.0.132:5000" {
		t.Fatalf("PUBLIC_HOST in child env = %q (present=%v)", got, ok)
	}
}

func TestLaunchPropagatesChildExitCode(t *testing.T) {
	runner := &fakeRunner{exitCode: 3}
	code, err := Launch(context.Background(), runner, Spec{
		AppDir:      t.TempDir(),
		Interpreter: "python3",
		Entrypoint:  "app.py",
	})
	if err != nil {
		t.Fatalf("nonzero child exit must not be an error: %v", err)
	}
	if code != 3 {
		t.Fatalf("exit code = %d", code)
	}
}

func TestLaunchRequiresRunnerAndTargets(t *testing.T) {
	if _, err := Launch(context.Background(), nil, Spec{Interpreter: "p", Entrypoint: "e"}); err == nil {
		t.Fatal("expected error for nil runner")
	}
	if _, err := Launch(context.Background(), &fakeRunner{}, Spec{Entrypoint: "e"}); err == nil {
		t.Fatal("expected error for missing interpreter")
	}
	if _, err := Launch(context.Background(), &fakeRunner{}, Spec{Interpreter: "p"}); err == nil {
		t.Fatal("expected error for missing entry point")
	}
}
