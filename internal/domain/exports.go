package domain

import (
	interfaces "acctvault/internal/domain/interfaces"
	types "acctvault/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	AccountID     = types.AccountID
	IDSet         = types.IDSet
	Password      = types.Password
	Fields        = types.Fields
	AccountRecord = types.AccountRecord
	SecretCipher  = types.SecretCipher
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AccountStore   = interfaces.AccountStore
	AccountView    = interfaces.AccountView
	DatabaseOpener = interfaces.DatabaseOpener
	VaultService   = interfaces.VaultService
)

// Function re-exports for the types subpackage.
var (
	NewIDSet          = types.NewIDSet
	NewSealedPassword = types.NewSealedPassword
	SealPassword      = types.SealPassword
	ParseAccountID    = types.ParseAccountID
	Now               = types.Now
)
