// Package config loads the acctvault CLI settings.
//
// Values are resolved in order, later sources winning:
//
//  1. built-in defaults
//  2. the YAML file ($ACCTVAULT_CONFIG or ~/.acctvault/config.yml)
//  3. environment variables (ACCTVAULT_DATABASE, ACCTVAULT_TREE_MODE,
//     ACCTVAULT_VERBOSE, ACCTVAULT_DEBUG, ACCTVAULT_MIN_PASSWORD_LENGTH,
//     NO_COLOR / ACCTVAULT_NO_COLOR)
//
// Command-line flags are applied on top by the CLI itself.
package config
