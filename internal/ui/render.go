package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"acctvault/internal/domain"
	"acctvault/internal/graph"
)

const maxColumnWidth = 32

// RenderTree writes the account hierarchy below root, or every tree when
// root is nil, one account per line.
func RenderTree(w io.Writer, v domain.AccountView, root *domain.AccountID) error {
	return v.Walk(root, func(a *graph.Account, depth int) error {
		line := strings.Repeat("  ", depth) + ID.Sprint(a.ID()) + " " + Name.Sprint(a.Name())
		if svc, ok := a.Service(); ok {
			line += " " + Muted.Sprint(svc)
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
}

// RenderTable writes accounts as aligned columns.
func RenderTable(w io.Writer, accounts []*graph.Account) error {
	header := []string{"ID", "NAME", "SERVICE", "LOGIN", "PARENT"}
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		svc, _ := a.Service()
		login, _ := a.LoginName()
		parent := ""
		if pid, ok := a.Parent(); ok {
			parent = pid.String()
		}
		rows = append(rows, []string{a.ID().String(), a.Name(), svc, login, parent})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], min(runewidth.StringWidth(cell), maxColumnWidth))
		}
	}

	writeRow := func(row []string) error {
		cells := make([]string, len(row))
		for i, cell := range row {
			cell = runewidth.Truncate(cell, maxColumnWidth, "…")
			if i < len(row)-1 {
				cell = runewidth.FillRight(cell, widths[i])
			}
			cells[i] = cell
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
		return err
	}

	if err := writeRow(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// RenderDetail writes every attribute of a. plain is shown in place of the
// password when non-nil.
func RenderDetail(w io.Writer, v domain.AccountView, a *graph.Account, plain []byte) error {
	var b strings.Builder
	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Label.Sprint(runewidth.FillRight(label+":", 14)), value)
	}
	opt := func(label string, value string, ok bool) {
		if ok {
			field(label, value)
		}
	}
	ref := func(id domain.AccountID) string {
		s, err := v.ShortForm(id)
		if err != nil {
			return id.String()
		}
		return s
	}
	refs := func(ids []domain.AccountID) string {
		out := make([]string, len(ids))
		for i, id := range ids {
			out[i] = ref(id)
		}
		return strings.Join(out, ", ")
	}

	field("ID", ID.Sprint(a.ID()))
	field("Name", Name.Sprint(a.Name()))
	svc, ok := a.Service()
	opt("Service", svc, ok)
	login, ok := a.LoginName()
	opt("Login", login, ok)
	switch {
	case plain != nil:
		field("Password", Secret.Sprint(string(plain)))
	case a.Password() != nil:
		field("Password", Muted.Sprint("hidden"))
	}
	comment, ok := a.Comment()
	opt("Comment", comment, ok)
	if pid, ok := a.Parent(); ok {
		field("Parent", ref(pid))
	}
	if c := v.ChildrenOf(a.ID()); len(c) > 0 {
		field("Children", refs(c))
	}
	if r := a.References(); len(r) > 0 {
		field("References", refs(r))
	}
	if r := v.ReferencedBy(a.ID()); len(r) > 0 {
		field("Referenced by", refs(r))
	}
	custom := a.CustomFields()
	for _, k := range a.CustomFieldKeys() {
		field(k, custom[k])
	}
	field("Created", a.CreateTime().Local().Format(time.DateTime))
	field("Modified", a.ModifyTime().Local().Format(time.DateTime))

	_, err := io.WriteString(w, b.String())
	return err
}
