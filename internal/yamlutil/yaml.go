// Package yamlutil isolates the YAML dependency behind the one operation
// profile loading needs: strict decoding with a bounded input size. Callers
// never see the underlying library's types.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps decoded input. A conversion profile is a handful of
// fields; anything approaching this size is not a profile.
const MaxInputSize = 1 << 20

var (
	ErrEmptyData      = errors.New("yamlutil: empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v and rejects unknown fields, so a typo
// in a profile key surfaces as an error instead of a silently ignored
// option.
func UnmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
