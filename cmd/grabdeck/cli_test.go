// Where: cli/cmd/grabdeck/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies is deterministic and fully populated.
package main

import (
	"errors"
	"testing"

	"github.com/grabdeck/cli/internal/container"
)

func TestBuildDependenciesPopulated(t *testing.T) {
	deps := buildDependencies()

	if deps.Out == nil {
		t.Fatal("expected output writer")
	}
	if deps.Runner == nil {
		t.Fatal("expected command runner")
	}
	if deps.DockerClient == nil {
		t.Fatal("expected docker client factory")
	}
	if deps.Prompter == nil {
		t.Fatal("expected prompter")
	}
	if deps.Waiter == nil {
		t.Fatal("expected server waiter")
	}
	if deps.DetectIP == nil {
		t.Fatal("expected IP detector")
	}
	if deps.Pause == nil {
		t.Fatal("expected pause function")
	}
	if deps.IsInteractive == nil {
		t.Fatal("expected interactivity probe")
	}
}

func TestDockerClientFactoryIsLazy(t *testing.T) {
	origNewClient := newDockerClient
	t.Cleanup(func() {
		newDockerClient = origNewClient
	})

	calls := 0
	newDockerClient = func() (container.DockerClient, error) {
		calls++
		return nil, errors.New("client")
	}

	deps := buildDependencies()
	if calls != 0 {
		t.Fatalf("factory invoked during wiring: %d calls", calls)
	}

	if _, err := deps.DockerClient(); err == nil {
		t.Fatal("expected factory error to propagate")
	}
	if calls != 1 {
		t.Fatalf("factory calls = %d", calls)
	}
}
