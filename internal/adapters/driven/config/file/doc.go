// Package file provides the TOML-backed ConfigStore.
//
// Keys use dot notation ("advance.initial_cadence"). On disk the first
// segment becomes a table:
//
//	[advance]
//	initial_cadence = 2.5
//	settle_delay_ms = 500
package file
