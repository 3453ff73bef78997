// Package registry holds the built-in launch descriptions compiled into the
// binary.
//
// The Registry maps canonical launch references (e.g.
// "cpp_mock_scenarios/manual_drive_kashiwanoha") to the Go generator
// functions that produce their descriptions. It is populated once during
// application startup by the description providers; duplicate registration
// is a programmer error and panics.
package registry
