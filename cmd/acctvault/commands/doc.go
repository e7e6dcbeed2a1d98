// Package commands defines the acctvault CLI.
//
// Commands
//
//   - create      Create a new, empty account file
//   - add         Add an account
//   - list        List accounts as a tree or a table
//   - tree        Print the hierarchy below one account
//   - show        Print every attribute of an account
//   - find        Search names, services and logins
//   - edit        Change attributes, parent or references
//   - remove      Delete an account without dependents
//   - password    Set, clear, reveal or copy an account password
//   - field       Set or unset custom fields
//   - save-as     Write the database to another file
//   - info        Print file and nonce details
//   - config      Show or initialise the configuration
//
// # Implementation
//
// The root command loads the configuration, applies flag overrides and builds
// the app context before any subcommand runs. Every command that touches the
// database opens it, does its work and closes it again; commands that change
// it save once at the end and only on success.
//
// The main password comes from --password, then $ACCTVAULT_PASSWORD, then a
// terminal prompt.
package commands
