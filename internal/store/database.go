package store

import (
	"fmt"
	"math"
	"sync"
	"time"

	"acctvault/internal/crypto"
	"acctvault/internal/domain"
	"acctvault/internal/fault"
	"acctvault/internal/graph"
	"acctvault/internal/logging"
	"acctvault/internal/nonce"
	"acctvault/internal/util/memzero"
)

const fileMode = 0o600

// Database is an open account file: its key material, its nonce counter
// and the account graph. A Database moves from open to closed exactly once;
// Create and Open are the only ways to obtain an open one.
//
// Methods lock internally, but the graph returned by Graph and Accounts is
// shared; hosts that touch it from several goroutines must serialise that
// access themselves.
type Database struct {
	mu sync.Mutex

	path           string
	mainKey        crypto.Key
	secondaryKey   crypto.Key
	secondaryNonce crypto.Nonce
	counter        uint64
	graph          *graph.Graph
	fields         *crypto.FieldCipher
	open           bool

	log   logging.Logger
	clock func() time.Time
}

// Option configures a Database.
type Option func(*Database)

func WithLogger(l logging.Logger) Option {
	return func(d *Database) { d.log = l }
}

// WithClock replaces the time source for account timestamps and secondary
// key derivation.
func WithClock(now func() time.Time) Option {
	return func(d *Database) { d.clock = now }
}

func newDatabase(path string, opts []Option) *Database {
	d := &Database{
		path:  path,
		log:   logging.Discard,
		clock: domain.Now,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Create returns a new, empty, open database bound to path. Nothing is
// written until Save. mainPassword is erased before Create returns.
func Create(path string, mainPassword []byte, opts ...Option) (*Database, error) {
	defer memzero.Erase(mainPassword)

	d := newDatabase(path, opts)
	secondaryNonce, err := crypto.RandomNonce()
	if err != nil {
		return nil, err
	}
	d.mainKey = crypto.HashPassword(mainPassword)
	d.secondaryKey = crypto.DeriveSecondaryKey(d.clock(), mainPassword)
	d.secondaryNonce = secondaryNonce
	d.fields = crypto.NewFieldCipher(d.secondaryKey, d.secondaryNonce)
	d.graph = graph.New(graph.WithClock(d.clock))
	d.open = true

	d.log.Debugf("created database %s", path)
	return d, nil
}

// Open reads, authenticates and decodes the account file at path.
// mainPassword is erased before Open returns. On any failure no Database
// is returned and no account data is kept.
func Open(path string, mainPassword []byte, opts ...Option) (*Database, error) {
	key := crypto.HashPassword(mainPassword)
	memzero.Erase(mainPassword)

	data, err := readFile(path)
	if err != nil {
		key.Wipe()
		return nil, err
	}

	d := newDatabase(path, opts)
	d.mainKey = key
	if err := d.load(data); err != nil {
		d.mainKey.Wipe()
		return nil, err
	}
	d.open = true

	d.log.Debugf("opened database %s: %d slots, nonce counter %d",
		path, d.graph.Len(), d.counter)
	return d, nil
}

func (d *Database) load(data []byte) error {
	if len(data) < nonce.Width+crypto.Overhead {
		return fault.ErrAuthentication
	}
	counter, err := nonce.Decode(string(data[:nonce.Width]))
	if err != nil {
		return fault.ErrAuthentication
	}

	var n crypto.Nonce
	copy(n[:], data[:nonce.Width])
	plain, err := crypto.Open(d.mainKey, n, data[nonce.Width:])
	if err != nil {
		return err
	}
	defer memzero.Zero(plain)

	p, err := decodePayload(plain)
	if err != nil {
		return fmt.Errorf("decode %s: %w", d.path, err)
	}
	g, err := graph.FromRecords(p.records, graph.WithClock(d.clock))
	if err != nil {
		return fmt.Errorf("decode %s: %w", d.path, err)
	}

	d.counter = counter
	d.secondaryKey = p.secondaryKey
	d.secondaryNonce = p.secondaryNonce
	d.fields = crypto.NewFieldCipher(d.secondaryKey, d.secondaryNonce)
	d.graph = g
	return nil
}

// Path returns the file the database saves to.
func (d *Database) Path() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.path
}

// NonceCounter returns the counter of the last successful save or open.
func (d *Database) NonceCounter() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.counter
}

func (d *Database) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Save seals the database under the next nonce and replaces the file at
// Path. The counter only advances once the file is written.
func (d *Database) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return fault.ErrClosed
	}
	return d.saveTo(d.path)
}

// SaveAs writes the database to path and, on success, makes path the
// database's location.
func (d *Database) SaveAs(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return fault.ErrClosed
	}
	if err := d.saveTo(path); err != nil {
		return err
	}
	d.path = path
	return nil
}

func (d *Database) saveTo(path string) error {
	plain := encodePayload(&payload{
		secondaryKey:   d.secondaryKey,
		secondaryNonce: d.secondaryNonce,
		records:        d.graph.Records(),
	})
	defer memzero.Zero(plain)

	if d.counter == math.MaxUint64 {
		return fmt.Errorf("%w: nonce counter exhausted", fault.ErrNonceOverflow)
	}
	next := d.counter + 1
	n := nonce.Bytes(next)
	sealed, err := crypto.Seal(d.mainKey, crypto.Nonce(n), plain)
	if err != nil {
		return err
	}

	out := make([]byte, 0, len(n)+len(sealed))
	out = append(out, n[:]...)
	out = append(out, sealed...)
	if err := writeFile(path, out, fileMode); err != nil {
		return err
	}

	d.counter = next
	d.log.Debugf("saved database %s: %d slots, nonce counter %d", path, d.graph.Len(), next)
	return nil
}

// Close wipes key material and cached plaintext passwords. It is safe to
// call more than once.
func (d *Database) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return
	}
	for _, a := range d.graph.Accounts() {
		if p := a.Password(); p != nil {
			p.Forget()
		}
	}
	d.mainKey.Wipe()
	d.secondaryKey.Wipe()
	memzero.Zero(d.secondaryNonce[:])
	d.fields.Wipe()
	d.graph = graph.New()
	d.open = false
	d.log.Debugf("closed database %s", d.path)
}
