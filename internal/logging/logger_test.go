package logging_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"acctvault/internal/logging"
)

func TestLogger_Levels(t *testing.T) {
	color.NoColor = true

	cases := []struct {
		name             string
		verbose, debug   bool
		wantOut, wantErr string
	}{
		{"quiet", false, false, "", "[warn] w 3\n[error] e 4\n"},
		{"verbose", true, false, "[info] i 1\n", "[warn] w 3\n[error] e 4\n"},
		{"debug", false, true, "[info] i 1\n[debug] d 2\n", "[warn] w 3\n[error] e 4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			l := logging.Logger{Verbose: tc.verbose, Debug: tc.debug, Out: &out, Err: &errOut}
			l.Infof("i %d", 1)
			l.Debugf("d %d", 2)
			l.Warnf("w %d", 3)
			l.Errorf("e %d", 4)
			assert.Equal(t, tc.wantOut, out.String())
			assert.Equal(t, tc.wantErr, errOut.String())
		})
	}
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.Discard.Errorf("nothing %s", "here")
	})
}
