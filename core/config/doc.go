// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads named formatter profiles from TOML and
//              YAML files and turns them into fmtx formatters.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-06-02
// Modified: 2026-06-03
//
// Change History:
// - 2026-06-02 v0.1.0: Initial implementation
// - 2026-06-03 v0.1.1: Profile formatting conveniences

// Package config loads named formatter profiles for CLUE.
//
// A profile captures one formatter configuration under a name, so tools
// and embedders can select output styles without touching code:
//
//	[profiles.hexdump]
//	kind = "int"
//	base = 16
//	width = 8
//	flags = ["pad_zeros", "upper_case"]
//
//	[profiles.money]
//	kind = "fixed"
//	precision = 2
//
// The same structure expressed as YAML loads from .yaml and .yml files.
// Load validates every profile up front; a configuration with an unknown
// kind, base or flag name is rejected as a whole.
package config
