// File: doc.go
// Title: Package Documentation for rangex
// Description: Package rangex provides half-open integral value ranges for
//              the CLUE utility library, with indexed access and iterator
//              support.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-29
// Modified: 2026-05-30
//
// Change History:
// - 2026-05-29 v0.1.0: Initial implementation
// - 2026-05-30 v0.1.1: Backward iteration and Collect

// Package rangex provides half-open integral value ranges.
//
// A Range is a lightweight immutable value describing [first, last)
// without materializing its elements. It supports membership and size
// queries, indexed access, and iteration:
//
//	for v := range rangex.New(0, 5).Values() {
//	    fmt.Println(v)
//	}
//
// Ranges are plain values and safe to copy and share.
package rangex
