// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/apidocswagger/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
// The returned error is an *oaserrors.ConfigError.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &oaserrors.ConfigError{Option: "input", Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &oaserrors.ConfigError{Option: "input", Message: multiSourceMsg}
	}

	return nil
}
