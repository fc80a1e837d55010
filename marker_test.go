package reindent

import "testing"

func TestUnifyMarkersBullets(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hyphen",
			input:    "- item",
			expected: "- item",
		},
		{
			name:     "asterisk",
			input:    "* item",
			expected: "- item",
		},
		{
			name:     "round bullet",
			input:    "• item",
			expected: "- item",
		},
		{
			name:     "white bullet",
			input:    "◦ item",
			expected: "- item",
		},
		{
			name:     "katakana middle dot",
			input:    "・ item",
			expected: "- item",
		},
		{
			name:     "en dash",
			input:    "– item",
			expected: "- item",
		},
		{
			name:     "em dash",
			input:    "— item",
			expected: "- item",
		},
		{
			name:     "minus sign",
			input:    "− item",
			expected: "- item",
		},
		{
			name:     "extra whitespace after marker absorbed",
			input:    "*   spaced out",
			expected: "- spaced out",
		},
		{
			name:     "bullet without following space not a marker",
			input:    "*emphasis*",
			expected: "*emphasis*",
		},
		{
			name:     "marker text preserved verbatim",
			input:    "• item with • inside",
			expected: "- item with • inside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnifyMarkers(tt.input)
			if got != tt.expected {
				t.Errorf("UnifyMarkers(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUnifyMarkersNumbered(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "digit with paren",
			input:    "1) first",
			expected: "1. first",
		},
		{
			name:     "digit with dot",
			input:    "2. second",
			expected: "2. second",
		},
		{
			name:     "multi-digit",
			input:    "10) tenth",
			expected: "10. tenth",
		},
		{
			name:     "lowercase letter keeps case",
			input:    "a) apple",
			expected: "a. apple",
		},
		{
			name:     "uppercase letter keeps case",
			input:    "B) banana",
			expected: "B. banana",
		},
		{
			name:     "roman numerals",
			input:    "iv) fourth",
			expected: "iv. fourth",
		},
		{
			name:     "uppercase roman numerals",
			input:    "VII. seventh",
			expected: "VII. seventh",
		},
		{
			name:     "extra whitespace collapsed to one space",
			input:    "3)    wide gap",
			expected: "3. wide gap",
		},
		{
			name:     "single-letter abbreviation false positive preserved",
			input:    "A. Lincoln was president",
			expected: "A. Lincoln was president",
		},
		{
			name:     "number without separator not a marker",
			input:    "1985 was a year",
			expected: "1985 was a year",
		},
		{
			name:     "separator without whitespace not a marker",
			input:    "1)x",
			expected: "1)x",
		},
		{
			name:     "plain text unchanged",
			input:    "no marker here",
			expected: "no marker here",
		},
		{
			name:     "empty line unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnifyMarkers(tt.input)
			if got != tt.expected {
				t.Errorf("UnifyMarkers(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Applying UnifyMarkers twice must equal applying it once.
func TestUnifyMarkersIdempotent(t *testing.T) {
	inputs := []string{
		"- item",
		"* item",
		"• item",
		"1) first",
		"a) apple",
		"iv. fourth",
		"plain text",
		"",
		"*emphasis*",
	}

	for _, input := range inputs {
		once := UnifyMarkers(input)
		twice := UnifyMarkers(once)
		if once != twice {
			t.Errorf("UnifyMarkers not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}
