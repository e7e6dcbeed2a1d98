package app

import (
	"acctvault/internal/domain"
	"acctvault/internal/logging"
)

type App struct {
	Home  string
	Vault domain.VaultService
	Log   logging.Logger
}

func New(cfg Config) *App {
	w := NewWire(cfg)
	return &App{
		Home:  cfg.Home,
		Vault: w.Vault,
		Log:   cfg.Log,
	}
}
