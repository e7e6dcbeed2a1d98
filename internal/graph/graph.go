package graph

import (
	"fmt"
	"time"

	domaintypes "acctvault/internal/domain/types"
	"acctvault/internal/fault"
)

// Graph is an arena of account slots indexed by id. A nil slot is a
// tombstone: the id stays retired and every other index is unaffected.
//
// Mutations check all preconditions before touching any slot, so a
// returned error leaves the graph exactly as it was.
type Graph struct {
	slots []*Account
	clock func() time.Time
}

// Option configures a Graph.
type Option func(*Graph)

// WithClock replaces the time source used for create and modify times.
func WithClock(now func() time.Time) Option {
	return func(g *Graph) { g.clock = now }
}

// New returns an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{clock: domaintypes.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Len returns the number of slots, tombstones included. It is also the id
// the next account will receive.
func (g *Graph) Len() int { return len(g.slots) }

// LiveCount returns the number of accounts that are not deleted.
func (g *Graph) LiveCount() int {
	n := 0
	for _, a := range g.slots {
		if a != nil {
			n++
		}
	}
	return n
}

// Get returns the live account with the given id.
func (g *Graph) Get(id domaintypes.AccountID) (*Account, error) {
	if id >= domaintypes.AccountID(len(g.slots)) {
		return nil, fmt.Errorf("%w: %d", fault.ErrAccountNotFound, id)
	}
	a := g.slots[id]
	if a == nil {
		return nil, fmt.Errorf("%w: %d", fault.ErrAccountDeleted, id)
	}
	return a, nil
}

// Exists reports whether id names a live account.
func (g *Graph) Exists(id domaintypes.AccountID) bool {
	return id < domaintypes.AccountID(len(g.slots)) && g.slots[id] != nil
}

// lookup returns the slot or nil, never failing.
func (g *Graph) lookup(id domaintypes.AccountID) *Account {
	if !g.Exists(id) {
		return nil
	}
	return g.slots[id]
}

// Accounts returns the live accounts in id order.
func (g *Graph) Accounts() []*Account {
	out := make([]*Account, 0, len(g.slots))
	for _, a := range g.slots {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// Add appends a new account named name under parent, if given, and returns
// its id.
func (g *Graph) Add(name string, parent *domaintypes.AccountID) (domaintypes.AccountID, error) {
	var p *Account
	if parent != nil {
		var err error
		if p, err = g.Get(*parent); err != nil {
			return 0, fmt.Errorf("parent: %w", err)
		}
	}

	now := g.clock()
	id := domaintypes.AccountID(len(g.slots))
	a := &Account{
		id:           id,
		parent:       clonePtr(parent),
		name:         name,
		customFields: map[string]string{},
		createTime:   now,
		modifyTime:   now,
		clock:        g.clock,
	}
	g.slots = append(g.slots, a)
	if p != nil {
		p.children.Add(id)
	}
	return id, nil
}

// Edit replaces every editable attribute of account id with f, rewiring
// parent and reference links on both ends. A new parent may not be the
// account itself or one of its descendants, and no account may reference
// itself or a missing account.
func (g *Graph) Edit(id domaintypes.AccountID, f domaintypes.Fields) error {
	a, err := g.Get(id)
	if err != nil {
		return err
	}

	if f.Parent != nil {
		pid := *f.Parent
		if pid == id {
			return fmt.Errorf("%w: %d", fault.ErrSelfParent, id)
		}
		if _, err := g.Get(pid); err != nil {
			return fmt.Errorf("parent: %w", err)
		}
		if g.isAncestor(id, pid) {
			return fmt.Errorf("%w: %d is a descendant of %d", fault.ErrParentCycle, pid, id)
		}
	}

	refs := domaintypes.NewIDSet(f.References...)
	for _, r := range refs {
		if r == id {
			return fmt.Errorf("%w: %d", fault.ErrSelfReference, id)
		}
		if _, err := g.Get(r); err != nil {
			return fmt.Errorf("reference: %w", err)
		}
	}

	// all checks passed; nothing below can fail
	g.relink(a, f.Parent, refs)

	a.name = f.Name
	a.service = clonePtr(f.Service)
	a.loginName = clonePtr(f.LoginName)
	a.comment = clonePtr(f.Comment)
	a.customFields = map[string]string{}
	for k, v := range f.CustomFields {
		a.customFields[k] = v
	}
	a.touch()
	return nil
}

// Reparent moves account id under parent, or to the top level when parent
// is nil. Other attributes are kept.
func (g *Graph) Reparent(id domaintypes.AccountID, parent *domaintypes.AccountID) error {
	a, err := g.Get(id)
	if err != nil {
		return err
	}
	f := a.Fields()
	f.Parent = parent
	return g.Edit(id, f)
}

// SetReferences replaces the accounts that id references.
func (g *Graph) SetReferences(id domaintypes.AccountID, refs domaintypes.IDSet) error {
	a, err := g.Get(id)
	if err != nil {
		return err
	}
	f := a.Fields()
	f.References = refs
	return g.Edit(id, f)
}

func (g *Graph) relink(a *Account, parent *domaintypes.AccountID, refs domaintypes.IDSet) {
	oldParent, hadParent := a.Parent()
	if !hadParent || parent == nil || oldParent != *parent {
		if hadParent {
			if p := g.lookup(oldParent); p != nil {
				p.children.Remove(a.id)
			}
		}
		if parent != nil {
			g.slots[*parent].children.Add(a.id)
		}
		a.parent = clonePtr(parent)
	}

	for _, r := range a.references.Minus(refs) {
		if ra := g.lookup(r); ra != nil {
			ra.referencedBy.Remove(a.id)
		}
	}
	for _, r := range refs.Minus(a.references) {
		g.slots[r].referencedBy.Add(a.id)
	}
	a.references = refs
}

// SoftDelete retires account id. It is refused while the account still has
// children or is referenced by another account, so no link can dangle.
func (g *Graph) SoftDelete(id domaintypes.AccountID) error {
	a, err := g.Get(id)
	if err != nil {
		return err
	}
	if n := a.children.Len(); n > 0 {
		return fmt.Errorf("%w: %d has %d children", fault.ErrHasDependents, id, n)
	}
	if n := a.referencedBy.Len(); n > 0 {
		return fmt.Errorf("%w: %d is referenced by %d accounts", fault.ErrHasDependents, id, n)
	}

	if pid, ok := a.Parent(); ok {
		if p := g.lookup(pid); p != nil {
			p.children.Remove(id)
		}
	}
	for _, r := range a.references {
		if ra := g.lookup(r); ra != nil {
			ra.referencedBy.Remove(id)
		}
	}
	if a.password != nil {
		a.password.Forget()
	}
	g.slots[id] = nil
	return nil
}

// isAncestor reports whether anc is id itself or one of its ancestors,
// following parent links from id. The walk is bounded by the slot count.
func (g *Graph) isAncestor(anc, id domaintypes.AccountID) bool {
	cur := id
	for range len(g.slots) + 1 {
		if cur == anc {
			return true
		}
		a := g.lookup(cur)
		if a == nil || a.parent == nil {
			return false
		}
		cur = *a.parent
	}
	return false
}
