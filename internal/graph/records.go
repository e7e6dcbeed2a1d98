package graph

import (
	"fmt"

	domaintypes "acctvault/internal/domain/types"
	"acctvault/internal/fault"
)

// Records returns the persisted form of every slot in id order; deleted
// slots are nil.
func (g *Graph) Records() []*domaintypes.AccountRecord {
	out := make([]*domaintypes.AccountRecord, len(g.slots))
	for i, a := range g.slots {
		if a != nil {
			out[i] = a.record()
		}
	}
	return out
}

// FromRecords rebuilds a graph from persisted slots and checks it with
// Validate.
func FromRecords(records []*domaintypes.AccountRecord, opts ...Option) (*Graph, error) {
	g := New(opts...)
	g.slots = make([]*Account, len(records))
	for i, r := range records {
		if r != nil {
			g.slots[i] = fromRecord(r, g.clock)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks every structural invariant: each slot id equals its
// index, parent/child and reference/referenced-by links are symmetric, no
// account links to itself or to a missing or deleted account, and parent
// links form no cycle. Failures wrap fault.ErrInconsistentGraph.
func (g *Graph) Validate() error {
	for i, a := range g.slots {
		if a == nil {
			continue
		}
		id := domaintypes.AccountID(i)
		if a.id != id {
			return inconsistent(id, "stored id %d", a.id)
		}

		if pid, ok := a.Parent(); ok {
			if pid == id {
				return inconsistent(id, "is its own parent")
			}
			p := g.lookup(pid)
			if p == nil {
				return inconsistent(id, "parent %d does not exist", pid)
			}
			if !p.children.Contains(id) {
				return inconsistent(id, "parent %d does not list it as a child", pid)
			}
		}
		for _, c := range a.children {
			ca := g.lookup(c)
			if ca == nil {
				return inconsistent(id, "child %d does not exist", c)
			}
			if ca.parent == nil || *ca.parent != id {
				return inconsistent(id, "child %d has another parent", c)
			}
		}

		for _, r := range a.references {
			if r == id {
				return inconsistent(id, "references itself")
			}
			ra := g.lookup(r)
			if ra == nil {
				return inconsistent(id, "reference %d does not exist", r)
			}
			if !ra.referencedBy.Contains(id) {
				return inconsistent(id, "reference %d is not mirrored", r)
			}
		}
		for _, r := range a.referencedBy {
			ra := g.lookup(r)
			if ra == nil {
				return inconsistent(id, "referrer %d does not exist", r)
			}
			if !ra.references.Contains(id) {
				return inconsistent(id, "referrer %d does not reference it", r)
			}
		}
	}

	for i, a := range g.slots {
		if a == nil || a.parent == nil {
			continue
		}
		if g.isAncestor(domaintypes.AccountID(i), *a.parent) {
			return inconsistent(domaintypes.AccountID(i), "parent chain forms a cycle")
		}
	}
	return nil
}

func inconsistent(id domaintypes.AccountID, format string, args ...any) error {
	return fmt.Errorf("%w: account %d: %s", fault.ErrInconsistentGraph, id, fmt.Sprintf(format, args...))
}
