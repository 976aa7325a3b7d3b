// Package debug provides optional file-based debug logging.
//
// When the TOYTABLE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise debug messages are dropped and
// only warnings reach stderr.
package debug
