// Package config loads host configuration for the Helios demo from a
// TOML file and can watch the file for edits.
//
// A missing file is not an error; defaults apply. Example:
//
//	[events]
//	queue_capacity = 256
//	listener_capacity = 16
//
//	[terminal]
//	mouse = true
//
//	[plugins]
//	scripts = ["handlers.lua"]
package config
