// Package app wires application dependencies for the CLI.
//
// It builds the store opener and the vault service from Config and exposes
// them via the App struct for commands to use.
package app
