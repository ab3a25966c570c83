// Package oaserrors provides structured error types for apidocswagger.
//
// Import path: github.com/erraggy/apidocswagger/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
//   - [ParseError]: apiDoc JSON/YAML decoding failures
//   - [ValidationError]: field declarations missing their name or type, and
//     findings against a produced Swagger document
//   - [ResourceLimitError]: request bodies over the configured limit
//   - [ConversionError]: failures while assembling the Swagger document
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConversion]: Matches any [ConversionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// A field declaration without a type aborts the whole build:
//
//	result, err := converter.ConvertWithOptions(converter.WithFilePath("api_data.json"))
//	var verr *oaserrors.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Printf("bad declaration at %s: missing %s\n", verr.Path, verr.Field)
//	}
//
// # Error Chaining
//
// All error types except [ResourceLimitError] support chaining via the Cause
// field and Unwrap():
//
//	var perr *oaserrors.ParseError
//	if errors.As(err, &perr) && errors.Is(perr.Cause, os.ErrNotExist) {
//	    // The input file doesn't exist
//	}
package oaserrors
