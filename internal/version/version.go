// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (module version, Git state) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns the version string derived from build info: the module
// version when the binary was built from a tagged release, otherwise the
// short VCS revision, optionally marked "(dirty)". Falls back to "dev".
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
