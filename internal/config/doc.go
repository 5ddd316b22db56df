// Package config loads editor settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults
//  2. A TOML file (see Load)
//  3. RICHEDITOR_ environment variables
//
// # Configuration file
//
//	[editor]
//	placeholder = "input here"
//	attachDelayMs = 200
//
//	[image]
//	maxWidth = 0          # 0 means the viewport width
//
//	[logging]
//	level = "info"        # debug, info, warn, error
//	file = ""             # empty logs to stderr
//
// # Errors
//
// Malformed files yield a *loader.ParseError, out-of-range values a
// *ValidationError matching ErrValidationFailed.
package config
