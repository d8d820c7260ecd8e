// Package diagnostic provides structured errors, warnings and hints produced
// while validating union schema declarations.
//
// Key capabilities:
//   - Severity-ranked diagnostics with stable codes
//   - Location by union and variant name
//   - "Did you mean" suggestions
//   - Folding all errors into a single error value
package diagnostic
