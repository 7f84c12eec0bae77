package aescore

import "errors"

var (
	// ErrFeatureUnsupported is returned when the backend compiled for a
	// direction cannot perform the operation: an alternative backend with no
	// real implementation wired in, or a required hardware capability that
	// is absent at runtime. It is never accompanied by output bytes.
	ErrFeatureUnsupported = errors.New("aescore: platform feature unsupported")

	// ErrInvalidKeySize is returned when a key is not 16, 24, or 32 bytes.
	ErrInvalidKeySize = errors.New("aescore: invalid key size, must be 16, 24, or 32 bytes")

	// ErrUnsupportedDirection is returned by Transform for a Direction value
	// that is neither Encrypt nor Decrypt.
	ErrUnsupportedDirection = errors.New("aescore: unsupported direction")
)

// IsFeatureUnsupported returns true if the error is or wraps ErrFeatureUnsupported.
func IsFeatureUnsupported(err error) bool {
	return errors.Is(err, ErrFeatureUnsupported)
}

// IsInvalidKeySize returns true if the error is or wraps ErrInvalidKeySize.
func IsInvalidKeySize(err error) bool {
	return errors.Is(err, ErrInvalidKeySize)
}

// Stable failure codes reported by FailureCode. Diagnostics layers branch on
// these rather than on error strings.
const (
	CodeFeatureUnsupported   = "feature_unsupported"
	CodeInvalidKeySize       = "invalid_key_size"
	CodeUnsupportedDirection = "unsupported_direction"
	CodeUnknown              = "unknown"
	CodeOK                   = "ok"
)

// FailureCode maps an error from this package to its stable code.
// A nil error maps to CodeOK; errors from other packages map to CodeUnknown.
func FailureCode(err error) string {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrFeatureUnsupported):
		return CodeFeatureUnsupported
	case errors.Is(err, ErrInvalidKeySize):
		return CodeInvalidKeySize
	case errors.Is(err, ErrUnsupportedDirection):
		return CodeUnsupportedDirection
	default:
		return CodeUnknown
	}
}
