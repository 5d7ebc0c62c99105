// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Consumed by the launched server
	EnvPublicHost = "PUBLIC_HOST"

	// Virtual environment activation
	EnvVirtualEnv = "VIRTUAL_ENV"
	EnvPythonHome = "PYTHONHOME"
	EnvPath       = "PATH"

	// Launcher configuration overrides (host-prefixed, see envutil)
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"
	HostSuffixNoPause    = "NO_PAUSE"
)
