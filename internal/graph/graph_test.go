package graph_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaintypes "acctvault/internal/domain/types"
	"acctvault/internal/fault"
	"acctvault/internal/graph"
)

func ptr[T any](v T) *T { return &v }

// tickingClock returns a clock that advances one millisecond per call.
func tickingClock() func() time.Time {
	ms := int64(1_700_000_000_000)
	return func() time.Time {
		ms++
		return time.UnixMilli(ms).UTC()
	}
}

func newGraph() *graph.Graph { return graph.New(graph.WithClock(tickingClock())) }

func mustAdd(t *testing.T, g *graph.Graph, name string, parent *domaintypes.AccountID) domaintypes.AccountID {
	t.Helper()
	id, err := g.Add(name, parent)
	require.NoError(t, err)
	return id
}

// assertSymmetric checks both link invariants through the public getters.
func assertSymmetric(t *testing.T, g *graph.Graph) {
	t.Helper()
	for _, a := range g.Accounts() {
		if pid, ok := a.Parent(); ok {
			p, err := g.Get(pid)
			require.NoError(t, err, "account %d has dangling parent %d", a.ID(), pid)
			assert.True(t, p.Children().Contains(a.ID()), "parent %d misses child %d", pid, a.ID())
		}
		for _, c := range a.Children() {
			ca, err := g.Get(c)
			require.NoError(t, err)
			pid, ok := ca.Parent()
			assert.True(t, ok && pid == a.ID(), "child %d does not point back to %d", c, a.ID())
		}
		for _, r := range a.References() {
			assert.NotEqual(t, a.ID(), r)
			ra, err := g.Get(r)
			require.NoError(t, err, "account %d has dangling reference %d", a.ID(), r)
			assert.True(t, ra.ReferencedBy().Contains(a.ID()))
		}
		for _, r := range a.ReferencedBy() {
			ra, err := g.Get(r)
			require.NoError(t, err)
			assert.True(t, ra.References().Contains(a.ID()))
		}
	}
	assert.NoError(t, g.Validate())
}

func TestAdd_AssignsSlotIndex(t *testing.T) {
	g := newGraph()
	assert.Equal(t, domaintypes.AccountID(0), mustAdd(t, g, "root1", nil))
	assert.Equal(t, domaintypes.AccountID(1), mustAdd(t, g, "root2", nil))
	assert.Equal(t, domaintypes.AccountID(2), mustAdd(t, g, "child", ptr(domaintypes.AccountID(1))))

	assert.Equal(t, domaintypes.IDSet{2}, g.ChildrenOf(1))
	child, err := g.Get(2)
	require.NoError(t, err)
	pid, ok := child.Parent()
	assert.True(t, ok)
	assert.Equal(t, domaintypes.AccountID(1), pid)
	assert.Equal(t, child.CreateTime(), child.ModifyTime())
	assertSymmetric(t, g)
}

func TestAdd_MissingOrDeletedParent(t *testing.T) {
	g := newGraph()
	_, err := g.Add("orphan", ptr(domaintypes.AccountID(7)))
	assert.ErrorIs(t, err, fault.ErrAccountNotFound)
	assert.Equal(t, 0, g.Len())

	id := mustAdd(t, g, "gone", nil)
	require.NoError(t, g.SoftDelete(id))
	_, err = g.Add("orphan", &id)
	assert.ErrorIs(t, err, fault.ErrAccountDeleted)
	assert.True(t, fault.IsErrInvariant(err))
	assert.Equal(t, 1, g.Len())
}

func TestEdit_ReparentMovesChild(t *testing.T) {
	g := newGraph()
	a := mustAdd(t, g, "a", nil)
	b := mustAdd(t, g, "b", nil)
	c := mustAdd(t, g, "c", &a)

	require.NoError(t, g.Reparent(c, &b))
	assert.Empty(t, g.ChildrenOf(a))
	assert.Equal(t, domaintypes.IDSet{c}, g.ChildrenOf(b))

	require.NoError(t, g.Reparent(c, nil))
	assert.Empty(t, g.ChildrenOf(b))
	assert.Equal(t, domaintypes.IDSet{a, b, c}, g.Roots())
	assertSymmetric(t, g)
}

func TestEdit_ReferencesAreMirrored(t *testing.T) {
	g := newGraph()
	mail := mustAdd(t, g, "mail", nil)
	phone := mustAdd(t, g, "phone", nil)
	bank := mustAdd(t, g, "bank", nil)

	require.NoError(t, g.SetReferences(bank, domaintypes.NewIDSet(phone, mail)))
	assert.Equal(t, domaintypes.IDSet{bank}, g.ReferencedBy(mail))
	assert.Equal(t, domaintypes.IDSet{bank}, g.ReferencedBy(phone))

	require.NoError(t, g.SetReferences(bank, domaintypes.IDSet{phone}))
	assert.Empty(t, g.ReferencedBy(mail))
	assert.Equal(t, domaintypes.IDSet{bank}, g.ReferencedBy(phone))
	assertSymmetric(t, g)
}

func TestEdit_ReplacesFieldsAndTouches(t *testing.T) {
	g := newGraph()
	id := mustAdd(t, g, "old", nil)
	a, err := g.Get(id)
	require.NoError(t, err)
	created := a.ModifyTime()

	f := a.Fields()
	f.Name = "new"
	f.Service = ptr("example.com")
	f.LoginName = ptr("me@example.com")
	f.CustomFields = map[string]string{"pin": "1234"}
	require.NoError(t, g.Edit(id, f))

	assert.Equal(t, "new", a.Name())
	svc, ok := a.Service()
	assert.True(t, ok)
	assert.Equal(t, "example.com", svc)
	_, ok = a.Comment()
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"pin": "1234"}, a.CustomFields())
	assert.True(t, a.ModifyTime().After(created))
	assert.Equal(t, created, a.CreateTime())
}

func TestEdit_RejectsBadLinks(t *testing.T) {
	g := newGraph()
	root := mustAdd(t, g, "root", nil)
	mid := mustAdd(t, g, "mid", &root)
	leaf := mustAdd(t, g, "leaf", &mid)
	gone := mustAdd(t, g, "gone", nil)
	require.NoError(t, g.SoftDelete(gone))

	cases := []struct {
		name   string
		id     domaintypes.AccountID
		parent *domaintypes.AccountID
		refs   domaintypes.IDSet
		want   error
	}{
		{"self parent", mid, &mid, nil, fault.ErrSelfParent},
		{"parent is child", root, &mid, nil, fault.ErrParentCycle},
		{"parent is grandchild", root, &leaf, nil, fault.ErrParentCycle},
		{"missing parent", leaf, ptr(domaintypes.AccountID(99)), nil, fault.ErrAccountNotFound},
		{"deleted parent", leaf, &gone, nil, fault.ErrAccountDeleted},
		{"self reference", leaf, &mid, domaintypes.IDSet{root, leaf}, fault.ErrSelfReference},
		{"deleted reference", leaf, &mid, domaintypes.IDSet{gone}, fault.ErrAccountDeleted},
		{"edit deleted", gone, nil, nil, fault.ErrAccountDeleted},
		{"edit missing", 42, nil, nil, fault.ErrAccountNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := g.Records()
			err := g.Edit(tc.id, domaintypes.Fields{Name: "changed", Parent: tc.parent, References: tc.refs})
			require.ErrorIs(t, err, tc.want)
			assert.True(t, fault.IsErrInvariant(err))
			assert.Equal(t, before, g.Records(), "graph changed after rejected edit")
		})
	}
	assertSymmetric(t, g)
}

func TestSoftDelete_TombstoneKeepsIndices(t *testing.T) {
	g := newGraph()
	a := mustAdd(t, g, "a", nil)
	b := mustAdd(t, g, "b", &a)
	c := mustAdd(t, g, "c", nil)
	require.NoError(t, g.SetReferences(c, domaintypes.IDSet{a}))

	require.NoError(t, g.SoftDelete(b))
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 2, g.LiveCount())
	assert.False(t, g.Exists(b))
	assert.Empty(t, g.ChildrenOf(a))

	require.NoError(t, g.SoftDelete(c))
	assert.Empty(t, g.ReferencedBy(a))

	la, err := g.Get(a)
	require.NoError(t, err)
	assert.Equal(t, a, la.ID())
	assert.Equal(t, domaintypes.AccountID(3), mustAdd(t, g, "d", nil))

	records := g.Records()
	assert.Nil(t, records[b])
	assert.Nil(t, records[c])
	assertSymmetric(t, g)
}

func TestSoftDelete_RefusedWithDependents(t *testing.T) {
	g := newGraph()
	parent := mustAdd(t, g, "parent", nil)
	mustAdd(t, g, "child", &parent)
	target := mustAdd(t, g, "target", nil)
	user := mustAdd(t, g, "user", nil)
	require.NoError(t, g.SetReferences(user, domaintypes.IDSet{target}))

	for _, id := range []domaintypes.AccountID{parent, target} {
		before := g.Records()
		err := g.SoftDelete(id)
		assert.ErrorIs(t, err, fault.ErrHasDependents)
		assert.Equal(t, before, g.Records())
	}

	assert.ErrorIs(t, g.SoftDelete(100), fault.ErrAccountNotFound)
	require.NoError(t, g.SoftDelete(user))
	assert.ErrorIs(t, g.SoftDelete(user), fault.ErrAccountDeleted)
	require.NoError(t, g.SoftDelete(target))
}

func TestQueries_TolerateTombstones(t *testing.T) {
	g := newGraph()
	id := mustAdd(t, g, "x", nil)
	require.NoError(t, g.SoftDelete(id))

	assert.NotPanics(t, func() {
		assert.Nil(t, g.ChildrenOf(id))
		assert.Nil(t, g.ReferencedBy(id))
		assert.Nil(t, g.ChildrenOf(1000))
		assert.Empty(t, g.Descendants(id))
		assert.Empty(t, g.Ancestors(id))
		assert.Empty(t, g.Roots())
	})
	assert.ErrorIs(t, g.Walk(&id, func(*graph.Account, int) error { return nil }), fault.ErrAccountDeleted)
	_, err := g.ShortForm(id)
	assert.ErrorIs(t, err, fault.ErrAccountDeleted)
}

func TestWalk_PreOrderWithDepth(t *testing.T) {
	g := newGraph()
	r0 := mustAdd(t, g, "r0", nil)
	r1 := mustAdd(t, g, "r1", nil)
	c0 := mustAdd(t, g, "c0", &r0)
	mustAdd(t, g, "c1", &r1)
	mustAdd(t, g, "g0", &c0)
	mustAdd(t, g, "c2", &r0)

	type visit struct {
		name  string
		depth int
	}
	var got []visit
	require.NoError(t, g.Walk(nil, func(a *graph.Account, depth int) error {
		got = append(got, visit{a.Name(), depth})
		return nil
	}))
	assert.Equal(t, []visit{
		{"r0", 0}, {"c0", 1}, {"g0", 2}, {"c2", 1},
		{"r1", 0}, {"c1", 1},
	}, got)

	var names []string
	require.NoError(t, g.Walk(nil, func(a *graph.Account, depth int) error {
		names = append(names, a.Name())
		if a.Name() == "c0" {
			return graph.SkipChildren
		}
		return nil
	}))
	assert.NotContains(t, names, "g0")
}

func TestDescendantsAndAncestors(t *testing.T) {
	g := newGraph()
	a := mustAdd(t, g, "a", nil)
	b := mustAdd(t, g, "b", &a)
	c := mustAdd(t, g, "c", &b)
	d := mustAdd(t, g, "d", &a)

	assert.Equal(t, domaintypes.IDSet{b, c, d}, g.Descendants(a))
	assert.Equal(t, domaintypes.IDSet{c}, g.Descendants(b))
	assert.Empty(t, g.Descendants(c))
	assert.Equal(t, []domaintypes.AccountID{b, a}, g.Ancestors(c))
	assert.Empty(t, g.Ancestors(a))
}

func TestDescendants_MissingOrDeletedRoot(t *testing.T) {
	g := newGraph()
	a := mustAdd(t, g, "a", nil)
	b := mustAdd(t, g, "b", nil)
	require.NoError(t, g.SoftDelete(b))

	assert.Empty(t, g.Descendants(b))
	assert.Empty(t, g.Descendants(a+10))
	assert.Empty(t, g.Descendants(a))
}

func TestFilterAndShortForm(t *testing.T) {
	g := newGraph()
	gh := mustAdd(t, g, "GitHub", nil)
	mail := mustAdd(t, g, "Mail", nil)
	bank := mustAdd(t, g, "Bank", nil)

	ma, _ := g.Get(mail)
	ma.SetService(ptr("mail.example.COM"))
	ba, _ := g.Get(bank)
	ba.SetLoginName(ptr("hub-user"))

	ids := func(accts []*graph.Account) []domaintypes.AccountID {
		var out []domaintypes.AccountID
		for _, a := range accts {
			out = append(out, a.ID())
		}
		return out
	}
	assert.Equal(t, []domaintypes.AccountID{gh, bank}, ids(g.Filter("HUB")))
	assert.Equal(t, []domaintypes.AccountID{mail}, ids(g.Filter("example")))
	assert.Len(t, g.Filter(""), 3)
	assert.Empty(t, g.Filter("nothing"))

	s, err := g.ShortForm(gh)
	require.NoError(t, err)
	assert.Equal(t, "0. GitHub", s)
}

func TestAccountSetters_BumpModifyTime(t *testing.T) {
	g := newGraph()
	id := mustAdd(t, g, "a", nil)
	a, err := g.Get(id)
	require.NoError(t, err)

	last := a.ModifyTime()
	steps := []func(){
		func() { a.SetName("b") },
		func() { a.SetService(ptr("svc")) },
		func() { a.SetLoginName(nil) },
		func() { a.SetComment(ptr("note")) },
		func() { a.SetCustomField("k2", "v") },
		func() { a.SetCustomField("k1", "v") },
		func() { assert.True(t, a.RemoveCustomField("k2")) },
		func() { a.ClearCustomFields() },
	}
	for i, step := range steps {
		step()
		assert.True(t, a.ModifyTime().After(last), "step %d", i)
		last = a.ModifyTime()
	}
	assert.False(t, a.RemoveCustomField("missing"))
	assert.Equal(t, last, a.ModifyTime())
}

func TestCustomFieldKeys_Sorted(t *testing.T) {
	g := newGraph()
	a, _ := g.Get(mustAdd(t, g, "a", nil))
	a.SetCustomField("k2", "v")
	a.SetCustomField("k1", "v")
	a.SetCustomField("a", "v")
	assert.Equal(t, []string{"a", "k1", "k2"}, a.CustomFieldKeys())
}

func TestFromRecords_RoundTrip(t *testing.T) {
	g := newGraph()
	a := mustAdd(t, g, "a", nil)
	b := mustAdd(t, g, "b", &a)
	c := mustAdd(t, g, "c", nil)
	require.NoError(t, g.SetReferences(c, domaintypes.IDSet{a, b}))
	gone := mustAdd(t, g, "gone", nil)
	require.NoError(t, g.SoftDelete(gone))

	back, err := graph.FromRecords(g.Records())
	require.NoError(t, err)
	assert.Equal(t, g.Records(), back.Records())
	assert.Equal(t, 4, back.Len())
	assertSymmetric(t, back)
}

func TestFromRecords_RejectsInconsistentLinks(t *testing.T) {
	rec := func(id domaintypes.AccountID) *domaintypes.AccountRecord {
		return &domaintypes.AccountRecord{ID: id, Name: id.String()}
	}

	cases := map[string]func() []*domaintypes.AccountRecord{
		"wrong id": func() []*domaintypes.AccountRecord {
			return []*domaintypes.AccountRecord{rec(1)}
		},
		"one-sided parent": func() []*domaintypes.AccountRecord {
			r0, r1 := rec(0), rec(1)
			r1.Parent = ptr(domaintypes.AccountID(0))
			return []*domaintypes.AccountRecord{r0, r1}
		},
		"child of tombstone": func() []*domaintypes.AccountRecord {
			r1 := rec(1)
			r1.Parent = ptr(domaintypes.AccountID(0))
			return []*domaintypes.AccountRecord{nil, r1}
		},
		"one-sided reference": func() []*domaintypes.AccountRecord {
			r0, r1 := rec(0), rec(1)
			r0.References = domaintypes.IDSet{1}
			return []*domaintypes.AccountRecord{r0, r1}
		},
		"self reference": func() []*domaintypes.AccountRecord {
			r0 := rec(0)
			r0.References = domaintypes.IDSet{0}
			r0.ReferencedBy = domaintypes.IDSet{0}
			return []*domaintypes.AccountRecord{r0}
		},
		"parent cycle": func() []*domaintypes.AccountRecord {
			r0, r1 := rec(0), rec(1)
			r0.Parent, r0.Children = ptr(domaintypes.AccountID(1)), domaintypes.IDSet{1}
			r1.Parent, r1.Children = ptr(domaintypes.AccountID(0)), domaintypes.IDSet{0}
			return []*domaintypes.AccountRecord{r0, r1}
		},
		"out of range child": func() []*domaintypes.AccountRecord {
			r0 := rec(0)
			r0.Children = domaintypes.IDSet{5}
			return []*domaintypes.AccountRecord{r0}
		},
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graph.FromRecords(build())
			assert.ErrorIs(t, err, fault.ErrInconsistentGraph)
			assert.True(t, fault.IsErrFormat(err))
		})
	}
}

func TestRandomOperations_KeepLinksSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	g := newGraph()

	randomID := func() domaintypes.AccountID {
		// occasionally out of range
		return domaintypes.AccountID(rng.Intn(g.Len() + 2))
	}
	randomParent := func() *domaintypes.AccountID {
		if g.Len() == 0 || rng.Intn(3) == 0 {
			return nil
		}
		return ptr(randomID())
	}

	for step := 0; step < 3000; step++ {
		before := g.Records()
		var err error
		switch op := rng.Intn(10); {
		case op < 4:
			_, err = g.Add("acct", randomParent())
		case op < 8 && g.Len() > 0:
			var refs domaintypes.IDSet
			for n := rng.Intn(4); n > 0; n-- {
				refs.Add(randomID())
			}
			err = g.Edit(randomID(), domaintypes.Fields{
				Name:       "edited",
				Parent:     randomParent(),
				References: refs,
			})
		case g.Len() > 0:
			err = g.SoftDelete(randomID())
		}

		if err != nil {
			require.True(t, fault.IsErrInvariant(err), "step %d: %v", step, err)
			require.Equal(t, before, g.Records(), "step %d: rejected op mutated the graph", step)
		}
		require.NoError(t, g.Validate(), "step %d", step)
	}
	assertSymmetric(t, g)
	assert.Greater(t, g.LiveCount(), 0)
}
