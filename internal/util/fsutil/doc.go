// Package fsutil holds the small filesystem helpers shared by the account
// store and the config file.
package fsutil
