// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"
)

// Prefix is the namespace for launcher-owned environment variables.
const Prefix = "GRABDECK"

// HostEnvKey constructs a host-level environment variable name
// by combining the launcher prefix with the given suffix.
// Example: HostEnvKey("CONFIG_PATH") returns "GRABDECK_CONFIG_PATH".
func HostEnvKey(suffix string) string {
	return Prefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// SetHostEnv sets a host-level environment variable.
func SetHostEnv(suffix, value string) {
	_ = os.Setenv(HostEnvKey(suffix), value)
}

// Merge overlays updates onto a base environment in KEY=VALUE form.
// Later keys win; keys mapped to the empty string are removed.
func Merge(base []string, updates map[string]string) []string {
	if len(updates) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(updates))
	seen := make(map[string]bool, len(updates))
	for _, entry := range base {
		key, _, ok := strings.Cut(entry, "=")
		if !ok {
			merged = append(merged, entry)
			continue
		}
		if value, hit := updates[key]; hit {
			seen[key] = true
			if value == "" {
				continue
			}
			merged = append(merged, key+"="+value)
			continue
		}
		merged = append(merged, entry)
	}
	for key, value := range updates {
		if seen[key] || value == "" {
			continue
		}
		merged = append(merged, key+"="+value)
	}
	return merged
}
