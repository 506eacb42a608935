package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{BaseDir: t.TempDir(), HomeDir: t.TempDir()}
}

func TestParseINIKeepsDeclarationOrder(t *testing.T) {
	src := `
[zeta]
command = ./zeta

[alpha]
command = ./alpha

[mid]
command = ./mid
`
	procs, err := ParseINI(strings.NewReader(src), testOptions(t))
	require.NoError(t, err)
	require.Len(t, procs, 3)

	assert.Equal(t, "zeta", procs[0].Label)
	assert.Equal(t, "alpha", procs[1].Label)
	assert.Equal(t, "mid", procs[2].Label)
	for i, p := range procs {
		assert.Equal(t, i, p.Index, "default index for %s", p.Label)
	}
}

func TestParseINIRecognizedKeys(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.Mkdir(filepath.Join(opts.BaseDir, "api"), 0o755))

	src := `
[api]
directory = api
command = bundle exec rails s -p $PORT # keep me
port = 3000
disable_autorun = true
index = 7
sleep = 4
color = blue
`
	procs, err := ParseINI(strings.NewReader(src), opts)
	require.NoError(t, err)
	require.Len(t, procs, 1)

	p := procs[0]
	assert.Equal(t, filepath.Join(opts.BaseDir, "api"), p.Dir)
	assert.Equal(t, "bundle exec rails s -p $PORT # keep me", p.Command)
	assert.Equal(t, 3000, p.Port)
	assert.True(t, p.DisableAutorun)
	assert.Equal(t, 7, p.Index)
	assert.Equal(t, 4, p.Sleep)
}

func TestParseINIDefaults(t *testing.T) {
	procs, err := ParseINI(strings.NewReader("[one]\ncommand = ls\n"), testOptions(t))
	require.NoError(t, err)
	require.Len(t, procs, 1)

	p := procs[0]
	assert.Empty(t, p.Dir)
	assert.Zero(t, p.Port)
	assert.False(t, p.DisableAutorun)
	assert.Zero(t, p.Index)
	assert.Zero(t, p.Sleep)
}

func TestParseINILeavesPortTokenAlone(t *testing.T) {
	procs, err := ParseINI(strings.NewReader("[web]\ncommand = ruby app.rb -p $PORT\n"), testOptions(t))
	require.NoError(t, err)
	assert.Equal(t, "ruby app.rb -p $PORT", procs[0].Command)
}

func TestParseINIMissingDirectory(t *testing.T) {
	src := "[try_sleep]\ndirectory = /does/not/exist/devproc\ncommand = ruby try_sleep.rb\n"
	_, err := ParseINI(strings.NewReader(src), testOptions(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseINIInvalidValues(t *testing.T) {
	cases := map[string]string{
		"port not a number":   "[a]\ncommand = x\nport = abc\n",
		"port zero":           "[a]\ncommand = x\nport = 0\n",
		"port above range":    "[a]\ncommand = x\nport = 65536\n",
		"port wraps int32":    "[a]\ncommand = x\nport = 4294967297\n",
		"label with space":    "[my app]\ncommand = x\n",
		"label with colon":    "[web:1]\ncommand = x\n",
		"reserved section":    "[DEFAULT]\ncommand = x\n",
		"index not a number":  "[a]\ncommand = x\nindex = first\n",
		"negative sleep":      "[a]\ncommand = x\nsleep = -1\n",
		"bool not true/false": "[a]\ncommand = x\ndisable_autorun = yes\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseINI(strings.NewReader(src), testOptions(t))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseINIIgnoresDefaultSection(t *testing.T) {
	src := "stray = value\n\n[web]\ncommand = ./web\n"
	procs, err := ParseINI(strings.NewReader(src), testOptions(t))
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, "web", procs[0].Label)
}

func TestParseINIEmpty(t *testing.T) {
	procs, err := ParseINI(strings.NewReader(""), testOptions(t))
	require.NoError(t, err)
	assert.Empty(t, procs)
}

func TestParseINIDottedSectionDoesNotInheritParent(t *testing.T) {
	src := "[web]\ncommand = rails s -p $PORT\nport = 3000\ndisable_autorun = true\nindex = 9\nsleep = 4\n\n[web.worker]\ncommand = sidekiq\n"
	procs, err := ParseINI(strings.NewReader(src), testOptions(t))
	require.NoError(t, err)
	require.Len(t, procs, 2)

	worker := procs[1]
	assert.Equal(t, "web.worker", worker.Label)
	assert.Equal(t, "sidekiq", worker.Command)
	assert.Zero(t, worker.Port)
	assert.False(t, worker.DisableAutorun)
	assert.Equal(t, 1, worker.Index)
	assert.Zero(t, worker.Sleep)
}

func TestParseINIAcceptsMaxPort(t *testing.T) {
	procs, err := ParseINI(strings.NewReader("[a]\ncommand = x\nport = 65535\n"), testOptions(t))
	require.NoError(t, err)
	assert.Equal(t, 65535, procs[0].Port)
}
