// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a profile in ~/.config/reindent/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/profile.yaml"

	// Find a user config path (contains .config/reindent) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/reindent") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownKind returns a hint listing the accepted names for a source or
// target kind flag.
func ForUnknownKind(accepted []string) string {
	if len(accepted) == 0 {
		return ""
	}
	return format("accepted: " + strings.Join(accepted, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
