package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testProfile struct {
	Target string `yaml:"target"`
	Indent int    `yaml:"indent"`
}

func TestUnmarshalStrict(t *testing.T) {
	var p testProfile
	err := UnmarshalStrict([]byte("target: markdown\nindent: 4\n"), &p)
	if err != nil {
		t.Fatalf("UnmarshalStrict() error: %v", err)
	}
	if p.Target != "markdown" || p.Indent != 4 {
		t.Errorf("UnmarshalStrict() = %+v, want target=markdown indent=4", p)
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	var p testProfile
	err := UnmarshalStrict([]byte("target: markdown\nbogus: field\n"), &p)
	if err == nil {
		t.Error("UnmarshalStrict() should reject unknown fields")
	}
}

func TestUnmarshalStrictEmptyData(t *testing.T) {
	var p testProfile
	if err := UnmarshalStrict(nil, &p); !errors.Is(err, ErrEmptyData) {
		t.Errorf("UnmarshalStrict(nil) error = %v, want ErrEmptyData", err)
	}
}

func TestUnmarshalStrictNilDestination(t *testing.T) {
	if err := UnmarshalStrict([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("UnmarshalStrict(_, nil) error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshalStrictTooLarge(t *testing.T) {
	var p testProfile
	big := []byte("target: " + strings.Repeat("x", MaxInputSize))
	if err := UnmarshalStrict(big, &p); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict(big) error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrictMalformed(t *testing.T) {
	var p testProfile
	if err := UnmarshalStrict([]byte("target: [unclosed\n"), &p); err == nil {
		t.Error("UnmarshalStrict() should fail on malformed YAML")
	}
}
