package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	got := ForConfigNotFound([]string{
		"profile.yaml",
		"/home/u/.config/reindent/profile.yaml",
	})

	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint missing standard prefix: %q", got)
	}
	if !strings.Contains(got, ".config/reindent/profile.yaml") {
		t.Errorf("hint should suggest the user config path: %q", got)
	}
}

func TestForConfigNotFoundNoUserPath(t *testing.T) {
	got := ForConfigNotFound([]string{"profile.yaml"})
	if !strings.Contains(got, "--config") {
		t.Errorf("hint should mention --config: %q", got)
	}
	if strings.Contains(got, "or create") {
		t.Errorf("hint should not suggest a path it did not search: %q", got)
	}
}

func TestForUnknownKind(t *testing.T) {
	got := ForUnknownKind([]string{"markdown", "slack", "gdocs"})
	if !strings.Contains(got, "markdown, slack, gdocs") {
		t.Errorf("hint should list accepted names: %q", got)
	}

	if ForUnknownKind(nil) != "" {
		t.Error("empty accepted list should produce no hint")
	}
}
