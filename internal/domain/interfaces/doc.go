// Package interfaces declares the contracts between the account store, the
// vault service and the CLI.
package interfaces
