// Package launchref parses and validates references to built-in launch
// descriptions. A reference has the canonical form "package/launch_name",
// e.g. "cpp_mock_scenarios/manual_drive_kashiwanoha".
package launchref
