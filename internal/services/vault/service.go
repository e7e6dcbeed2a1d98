package vault

import (
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"

	"acctvault/internal/domain"
	"acctvault/internal/fault"
	"acctvault/internal/logging"
	"acctvault/internal/util/fsutil"
	"acctvault/internal/util/memzero"
)

// weakScore is the zxcvbn score below which a new main password draws a
// warning. Scores run from 0 (guessable) to 4.
const weakScore = 2

// ErrWeakPassword is returned when a new main password is shorter than the
// configured minimum.
var ErrWeakPassword = errors.New("main password is too short")

// Service creates and opens account files through a DatabaseOpener.
type Service struct {
	opener    domain.DatabaseOpener
	minLength int
	log       logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMinPasswordLength sets the minimum length, in characters, of a new main
// password. Zero disables the check.
func WithMinPasswordLength(n int) Option {
	return func(s *Service) { s.minLength = n }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a vault service backed by the given opener.
func New(o domain.DatabaseOpener, opts ...Option) *Service {
	s := &Service{opener: o, log: logging.Discard}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create makes a new account file at path and saves it. mainPassword is
// erased before Create returns.
func (s *Service) Create(path string, mainPassword []byte) (domain.AccountStore, error) {
	defer memzero.Erase(mainPassword)

	if n := utf8.RuneCount(mainPassword); n < s.minLength {
		return nil, fmt.Errorf("%w (%d characters, need %d)", ErrWeakPassword, n, s.minLength)
	}
	if s.opener.Exists(path) {
		return nil, fmt.Errorf("%w: %s", fault.ErrExists, path)
	}
	if res := zxcvbn.PasswordStrength(string(mainPassword), nil); res.Score < weakScore {
		s.log.Warnf("main password is easy to guess (strength %d/4, cracked in %s)",
			res.Score, res.CrackTimeDisplay)
	}
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fault.WrapIO("mkdir", filepath.Dir(path), err)
	}

	db, err := s.opener.Create(path, mainPassword)
	if err != nil {
		return nil, err
	}
	if err := db.Save(); err != nil {
		db.Close()
		return nil, err
	}
	s.log.Infof("created %s", path)
	return db, nil
}

// Open authenticates and loads the account file at path.
func (s *Service) Open(path string, mainPassword []byte) (domain.AccountStore, error) {
	db, err := s.opener.Open(path, mainPassword)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("opened %s (nonce counter %d, %d accounts)",
		path, db.NonceCounter(), db.Accounts().LiveCount())
	return db, nil
}

// View opens path, runs fn and closes the store without saving.
func (s *Service) View(path string, mainPassword []byte, fn func(domain.AccountStore) error) error {
	db, err := s.Open(path, mainPassword)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

// Update opens path, runs fn and saves when fn returns nil. The store is
// closed either way; a failed fn leaves the file untouched.
func (s *Service) Update(path string, mainPassword []byte, fn func(domain.AccountStore) error) error {
	db, err := s.Open(path, mainPassword)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := fn(db); err != nil {
		return err
	}
	if err := db.Save(); err != nil {
		return err
	}
	s.log.Debugf("saved %s (nonce counter %d)", path, db.NonceCounter())
	return nil
}

// Compile-time assertion that Service implements domain.VaultService.
var _ domain.VaultService = (*Service)(nil)
