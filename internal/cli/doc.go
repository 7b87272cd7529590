// SPDX-License-Identifier: MIT
// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the command's configuration.
package cli
