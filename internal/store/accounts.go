package store

import (
	"acctvault/internal/domain"
	"acctvault/internal/fault"
	"acctvault/internal/graph"
)

// Accounts returns a read view of the account graph. A closed database
// presents an empty view.
func (d *Database) Accounts() domain.AccountView {
	return d.Graph()
}

// Graph returns the mutable account graph. Changes are persisted by the
// next Save. A closed database returns an empty graph.
func (d *Database) Graph() *graph.Graph {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.graph
}

// AddAccount appends a new account and returns its id.
func (d *Database) AddAccount(name string, parent *domain.AccountID) (domain.AccountID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return 0, fault.ErrClosed
	}
	id, err := d.graph.Add(name, parent)
	if err != nil {
		return 0, err
	}
	d.log.Debugf("added account %d", id)
	return id, nil
}

// EditAccount replaces the editable attributes of account id.
func (d *Database) EditAccount(id domain.AccountID, f domain.Fields) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return fault.ErrClosed
	}
	if err := d.graph.Edit(id, f); err != nil {
		return err
	}
	d.log.Debugf("edited account %d", id)
	return nil
}

// RemoveAccount soft-deletes account id.
func (d *Database) RemoveAccount(id domain.AccountID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return fault.ErrClosed
	}
	if err := d.graph.SoftDelete(id); err != nil {
		return err
	}
	d.log.Debugf("removed account %d", id)
	return nil
}

// Update runs fn on the live account id, for the per-field setters.
func (d *Database) Update(id domain.AccountID, fn func(a *graph.Account) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return fault.ErrClosed
	}
	a, err := d.graph.Get(id)
	if err != nil {
		return err
	}
	return fn(a)
}

// SetPassword seals plain under the secondary key and stores it on account
// id. plain is not modified.
func (d *Database) SetPassword(id domain.AccountID, plain []byte) error {
	return d.Update(id, func(a *graph.Account) error {
		if err := a.SetPassword(plain, d.fields); err != nil {
			return err
		}
		d.log.Debugf("set password of account %d", id)
		return nil
	})
}

func (d *Database) ClearPassword(id domain.AccountID) error {
	return d.Update(id, func(a *graph.Account) error {
		a.ClearPassword()
		return nil
	})
}

// Decipher returns the plaintext password of account id. The plaintext is
// cached on the account until Close.
func (d *Database) Decipher(id domain.AccountID) ([]byte, error) {
	var plain []byte
	err := d.Update(id, func(a *graph.Account) error {
		p := a.Password()
		if p == nil {
			return fault.ErrNoPassword
		}
		d.log.Debugf("deciphering password of account %d", id)
		var err error
		plain, err = p.Decipher(d.fields)
		return err
	})
	return plain, err
}

// Compile-time assertion that Database implements domain.AccountStore.
var _ domain.AccountStore = (*Database)(nil)
