// Package commands wires the photo-settings command line.
//
// The root command starts the interactive card browser. `table` prints the
// same cards without the UI, and `exposure` exposes the aperture and ISO
// mappings directly for scripts.
package commands
