// Package registration composes the field validators into a registration
// attempt.
//
// Two policies are provided:
// - Build/Registrar.Register: fail fast, the first failing field in
//   email, password, age order is the only one reported
// - ValidateAll/ValidateAllFields: run every check and collect all issues
//
// WithFallback and WithConditionalHandling recover selected email failures.
// Nothing in this package logs or prints; callers observe results via
// solo.Match.
package registration
