package graph

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	domaintypes "acctvault/internal/domain/types"
)

// SkipChildren may be returned by a WalkFunc to skip the children of the
// account just visited.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every account reached by Walk, with its depth
// below the starting point.
type WalkFunc func(a *Account, depth int) error

// ChildrenOf returns the live children of id. Missing or deleted ids have
// no children.
func (g *Graph) ChildrenOf(id domaintypes.AccountID) domaintypes.IDSet {
	a := g.lookup(id)
	if a == nil {
		return nil
	}
	return g.liveOnly(a.children)
}

// ReferencedBy returns the live accounts that reference id.
func (g *Graph) ReferencedBy(id domaintypes.AccountID) domaintypes.IDSet {
	a := g.lookup(id)
	if a == nil {
		return nil
	}
	return g.liveOnly(a.referencedBy)
}

func (g *Graph) liveOnly(ids domaintypes.IDSet) domaintypes.IDSet {
	var out domaintypes.IDSet
	for _, id := range ids {
		if g.Exists(id) {
			out = append(out, id)
		}
	}
	return out
}

// Roots returns the live accounts without a live parent, in id order.
func (g *Graph) Roots() domaintypes.IDSet {
	var out domaintypes.IDSet
	for _, a := range g.slots {
		if a == nil {
			continue
		}
		if pid, ok := a.Parent(); ok && g.Exists(pid) {
			continue
		}
		out = append(out, a.id)
	}
	return out
}

// Walk visits accounts in pre-order, children in ascending id order. With a
// nil root it walks every tree starting from Roots. Deleted slots are
// skipped and no account is visited twice.
func (g *Graph) Walk(root *domaintypes.AccountID, fn WalkFunc) error {
	starts := g.Roots()
	if root != nil {
		if _, err := g.Get(*root); err != nil {
			return err
		}
		starts = domaintypes.IDSet{*root}
	}

	seen := make(map[domaintypes.AccountID]bool)
	for _, id := range starts {
		if err := g.walk(id, 0, seen, fn); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) walk(id domaintypes.AccountID, depth int, seen map[domaintypes.AccountID]bool, fn WalkFunc) error {
	a := g.lookup(id)
	if a == nil || seen[id] {
		return nil
	}
	seen[id] = true

	err := fn(a, depth)
	if err == SkipChildren {
		return nil
	}
	if err != nil {
		return err
	}
	for _, c := range a.children {
		if err := g.walk(c, depth+1, seen, fn); err != nil {
			return err
		}
	}
	return nil
}

// Descendants returns every live account below id.
func (g *Graph) Descendants(id domaintypes.AccountID) domaintypes.IDSet {
	var out domaintypes.IDSet
	if !g.Exists(id) {
		return out
	}
	// Walk fails only on a missing root or an error from fn; neither occurs.
	_ = g.Walk(&id, func(a *Account, depth int) error {
		if depth > 0 {
			out.Add(a.id)
		}
		return nil
	})
	return out
}

// Ancestors returns the chain of parents above id, nearest first. The chain
// stops at the first missing or deleted parent.
func (g *Graph) Ancestors(id domaintypes.AccountID) []domaintypes.AccountID {
	var out []domaintypes.AccountID
	a := g.lookup(id)
	for a != nil && a.parent != nil && len(out) < len(g.slots) {
		pid := *a.parent
		if pid == id || slices.Contains(out, pid) {
			break
		}
		p := g.lookup(pid)
		if p == nil {
			break
		}
		out = append(out, pid)
		a = p
	}
	return out
}

// Filter returns the live accounts whose name, service or login name
// contains query, ignoring case. An empty query matches every account.
func (g *Graph) Filter(query string) []*Account {
	q := strings.ToLower(query)
	var out []*Account
	for _, a := range g.slots {
		if a != nil && a.matches(q) {
			out = append(out, a)
		}
	}
	return out
}

func (a *Account) matches(q string) bool {
	if q == "" || strings.Contains(strings.ToLower(a.name), q) {
		return true
	}
	if a.service != nil && strings.Contains(strings.ToLower(*a.service), q) {
		return true
	}
	return a.loginName != nil && strings.Contains(strings.ToLower(*a.loginName), q)
}

// ShortForm renders an account as "<id>. <name>".
func (g *Graph) ShortForm(id domaintypes.AccountID) (string, error) {
	a, err := g.Get(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d. %s", a.id, a.name), nil
}
