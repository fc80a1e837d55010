package reindent

import "errors"

// Sentinel errors for option validation.
// The conversion pipeline itself is total: once options validate, every
// stage succeeds on any input, including the empty string.
var (
	ErrInvalidSourceKind   = errors.New("invalid source kind")
	ErrInvalidTargetKind   = errors.New("invalid target kind")
	ErrInvalidIndentSize   = errors.New("invalid indent size")
	ErrInvalidBulletSymbol = errors.New("invalid bullet symbol")
)
