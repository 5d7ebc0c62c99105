// Where: cli/internal/launcher/launcher.go
// What: The launch pipeline: build the child environment and hand off control.
// Why: Keep the activation-then-assign-then-spawn ordering in one place.
package launcher

import (
	"context"
	"fmt"
	"os"

	"github.com/grabdeck/cli/internal/constants"
	"github.com/grabdeck/cli/internal/envutil"
	"github.com/grabdeck/cli/internal/venv"
)

// Spec describes one server launch.
type Spec struct {
	AppDir      string
	Interpreter string
	Entrypoint  string
	EnvUpdates  map[string]string
}

// BuildEnvUpdates computes the child environment mutations: the venv
// activation effect (when a venv was discovered) followed by the PUBLIC_HOST
// assignment. activeEnv may be nil.
func BuildEnvUpdates(activeEnv *venv.Env, publicHost string) map[string]string {
	updates := make(map[string]string)
	if activeEnv != nil {
		for key, value := range activeEnv.Apply(os.Getenv(constants.EnvPath)) {
			updates[key] = value
		}
	}
	updates[constants.EnvPublicHost] = publicHost
	return updates
}

// Launch runs the server synchronously: the entry point is invoked through
// the interpreter with no further arguments, in the app directory, with the
// merged environment. Returns the child's exit code. The code is reported,
// not judged; whatever the server exits with is its own business.
func Launch(ctx context.Context, runner CommandRunner, spec Spec) (int, error) {
	if runner == nil {
		return 0, fmt.Errorf("command runner is nil")
	}
	if spec.Interpreter == "" {
		return 0, fmt.Errorf("no interpreter resolved")
	}
	if spec.Entrypoint == "" {
		return 0, fmt.Errorf("no entry point resolved")
	}

	env := envutil.Merge(os.Environ(), spec.EnvUpdates)
	return runner.Run(ctx, spec.AppDir, env, spec.Interpreter, spec.Entrypoint)
}
