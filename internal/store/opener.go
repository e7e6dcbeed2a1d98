package store

import "acctvault/internal/domain"

// Opener creates and opens account files with a fixed set of options.
type Opener struct {
	opts []Option
}

func NewOpener(opts ...Option) *Opener { return &Opener{opts: opts} }

func (o *Opener) Create(path string, mainPassword []byte) (domain.AccountStore, error) {
	d, err := Create(path, mainPassword, o.opts...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (o *Opener) Open(path string, mainPassword []byte) (domain.AccountStore, error) {
	d, err := Open(path, mainPassword, o.opts...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Exists reports whether a file is already present at path.
func (o *Opener) Exists(path string) bool { return exists(path) }

// Compile-time assertion that Opener implements domain.DatabaseOpener.
var _ domain.DatabaseOpener = (*Opener)(nil)
