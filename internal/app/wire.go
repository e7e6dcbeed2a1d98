package app

import (
	"acctvault/internal/domain"
	vaultsvc "acctvault/internal/services/vault"
	"acctvault/internal/store"
)

// Wire bundles the opener and services for the CLI.
type Wire struct {
	Opener domain.DatabaseOpener
	Vault  domain.VaultService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	opener := store.NewOpener(store.WithLogger(cfg.Log))
	vault := vaultsvc.New(opener,
		vaultsvc.WithMinPasswordLength(cfg.MinPasswordLength),
		vaultsvc.WithLogger(cfg.Log),
	)
	return &Wire{Opener: opener, Vault: vault}
}
