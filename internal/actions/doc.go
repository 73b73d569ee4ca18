// Package actions implements the workflows behind each CLI command.
//
// Commands in internal/cli parse flags and delegate here; this package
// sequences the git operations and reports progress through the splog.
package actions
