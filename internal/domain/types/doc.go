// Package types holds the plain value types of the account domain.
package types
