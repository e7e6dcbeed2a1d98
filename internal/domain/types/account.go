package types

import "time"

// Fields holds every user-editable attribute of an account. An edit
// replaces all of them at once.
type Fields struct {
	Name         string
	Service      *string
	LoginName    *string
	Comment      *string
	Parent       *AccountID
	References   IDSet
	CustomFields map[string]string
}

// AccountRecord is the persisted form of one live account slot.
type AccountRecord struct {
	ID           AccountID
	Parent       *AccountID
	Children     IDSet
	References   IDSet
	ReferencedBy IDSet
	Name         string
	Service      *string
	LoginName    *string
	Password     []byte // sealed; nil when unset
	Comment      *string
	CustomFields map[string]string
	CreateTime   time.Time
	ModifyTime   time.Time
}
