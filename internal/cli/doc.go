// Package cli is responsible for parsing command-line arguments,
// validating user input, and handling process-level concerns like exit
// codes. It translates CLI flags into the linker's run options.
package cli
