package ui_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctvault/internal/domain"
	"acctvault/internal/graph"
	"acctvault/internal/ui"
)

func plain(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
}

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	root, err := g.Add("Email", nil)
	require.NoError(t, err)
	child, err := g.Add("Work", &root)
	require.NoError(t, err)
	_, err = g.Add("Bank", nil)
	require.NoError(t, err)

	a, err := g.Get(child)
	require.NoError(t, err)
	svc := "mail.example.com"
	a.SetService(&svc)
	return g
}

func TestFormatter_NoColor(t *testing.T) {
	plain(t)
	assert.Equal(t, "#7", ui.ID.Sprint(domain.AccountID(7)))
	assert.Equal(t, "(x)", ui.Muted.Sprintf("%s", "x"))
	assert.Equal(t, "ok", ui.Success.Sprint("ok"))
}

func TestRenderTree(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	require.NoError(t, ui.RenderTree(&buf, sample(t), nil))
	assert.Equal(t, "#0 Email\n  #1 Work (mail.example.com)\n#2 Bank\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	plain(t)
	g := sample(t)
	var buf bytes.Buffer
	require.NoError(t, ui.RenderTable(&buf, g.Accounts()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME   SERVICE           LOGIN  PARENT", lines[0])
	assert.Equal(t, "1   Work   mail.example.com         0", lines[2])
}

func TestRenderDetail(t *testing.T) {
	plain(t)
	g := sample(t)
	a, err := g.Get(1)
	require.NoError(t, err)
	a.SetCustomField("pin", "1234")

	var buf bytes.Buffer
	require.NoError(t, ui.RenderDetail(&buf, g, a, []byte("s3cret")))
	out := buf.String()
	assert.Contains(t, out, "Parent:")
	assert.Contains(t, out, "0. Email")
	assert.Contains(t, out, "s3cret")
	assert.Contains(t, out, "pin:")
}

type fakeClipboard struct {
	text     string
	writeErr error
}

func (f *fakeClipboard) ReadAll() (string, error) { return f.text, nil }
func (f *fakeClipboard) WriteAll(s string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = s
	return nil
}

func TestCopyAndClear(t *testing.T) {
	cb := &fakeClipboard{}
	require.NoError(t, ui.CopyAndClear(context.Background(), cb, "pw", time.Millisecond))
	assert.Equal(t, "", cb.text)

	require.NoError(t, ui.CopyAndClear(context.Background(), cb, "pw", 0))
	assert.Equal(t, "pw", cb.text)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, ui.CopyAndClear(ctx, cb, "other", time.Hour))
	assert.Equal(t, "", cb.text)

	cb.writeErr = errors.New("no clipboard")
	assert.Error(t, ui.CopyAndClear(context.Background(), cb, "pw", 0))
}

type replacingClipboard struct{ fakeClipboard }

func (r *replacingClipboard) ReadAll() (string, error) { return "user copied something else", nil }

func TestCopyAndClear_LeavesForeignContent(t *testing.T) {
	cb := &replacingClipboard{}
	require.NoError(t, ui.CopyAndClear(context.Background(), cb, "pw", time.Millisecond))
	assert.Equal(t, "pw", cb.text)
}
