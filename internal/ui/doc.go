// Package ui holds terminal presentation for the acctvault CLI: semantic
// colour formatters, account tree/table/detail rendering, the hidden
// password prompt and the self-clearing clipboard copy.
package ui
