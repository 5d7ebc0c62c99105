// Where: cli/internal/venv/venv.go
// What: Virtual environment discovery and activation semantics.
// Why: Replicate the effect of bin/activate on the child environment without a shell.
package venv

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/grabdeck/cli/internal/constants"
)

// defaultDirs are the venv directories probed, in order, when none is configured.
var defaultDirs = []string{"venv", ".venv"}

// Env describes a discovered virtual environment.
type Env struct {
	Dir    string // venv root, absolute
	BinDir string // directory holding the interpreter and activate artifact
}

// Discover looks for a virtual-environment activation artifact under appDir.
// explicit names the venv directory relative to appDir; when empty the
// default locations are probed. A missing venv is not an error: activation
// is optional and the launcher proceeds without it.
func Discover(appDir, explicit string) *Env {
	candidates := defaultDirs
	if explicit != "" {
		candidates = []string{explicit}
	}

	for _, name := range candidates {
		dir := name
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(appDir, name)
		}
		if env := probe(dir); env != nil {
			return env
		}
	}
	return nil
}

// probe checks a single directory for an activation artifact in either the
// POSIX (bin/activate) or Windows (Scripts/activate.bat) layout.
func probe(dir string) *Env {
	layouts := []struct {
		bin      string
		activate string
	}{
		{"bin", "activate"},
		{"Scripts", "activate.bat"},
	}
	for _, l := range layouts {
		binDir := filepath.Join(dir, l.bin)
		if _, err := os.Stat(filepath.Join(binDir, l.activate)); err == nil {
			return &Env{Dir: dir, BinDir: binDir}
		}
	}
	return nil
}

// Apply returns the environment updates the activation script would make:
// VIRTUAL_ENV set to the venv root, the venv binary directory prepended to
// PATH, and PYTHONHOME dropped. currentPath is the PATH value to prepend to.
func (e *Env) Apply(currentPath string) map[string]string {
	path := e.BinDir
	if currentPath != "" {
		path += string(os.PathListSeparator) + currentPath
	}
	return map[string]string{
		constants.EnvVirtualEnv: e.Dir,
		constants.EnvPath:       path,
		constants.EnvPythonHome: "",
	}
}

// Interpreter returns the Python interpreter to launch with. Inside a venv
// the bundled interpreter is preferred; otherwise the system python3 (or
// python) found on PATH is used.
func Interpreter(env *Env) (string, error) {
	if env != nil {
		for _, name := range []string{"python", "python3", "python.exe"} {
			candidate := filepath.Join(env.BinDir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}

	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}
