package app

import "acctvault/internal/logging"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home              string         // config directory, e.g. $HOME/.acctvault
	MinPasswordLength int            // minimum characters in a new main password
	Log               logging.Logger // shared by the store and services
}
