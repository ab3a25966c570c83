// Package severity provides severity level constants and utilities
// for issues reported by the converter and validator packages.
//
// The severity levels are ordered from most to least severe as declared:
// Error, Warning, Info.
package severity

// Severity indicates the severity level of an issue raised while building
// or validating a Swagger document.
type Severity int

const (
	// SeverityError indicates a finding that makes the produced document invalid.
	// Used by the validator package.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-effort transformation that should be
	// reviewed, such as a body $ref to a definition that was never declared.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices,
	// such as a definition merged from several endpoints.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
