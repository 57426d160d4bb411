package commands

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(ran *string, scene *string) *Registry {
	r := NewRegistry("run")
	for _, name := range []string{"run", "validate"} {
		name := name
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(new(bytes.Buffer))
		fs.StringVar(scene, "scene", "house", "scene name")
		r.Register(name, name+" the viewer", fs, func() error {
			*ran = name
			return nil
		})
	}
	return r
}

func TestExecuteNamedCommand(t *testing.T) {
	var ran, scene string
	r := newTestRegistry(&ran, &scene)

	require.NoError(t, r.Execute([]string{"validate", "-scene", "display"}))
	assert.Equal(t, "validate", ran)
	assert.Equal(t, "display", scene)
}

func TestExecuteFallback(t *testing.T) {
	var ran, scene string
	r := newTestRegistry(&ran, &scene)

	require.NoError(t, r.Execute(nil))
	assert.Equal(t, "run", ran)
	assert.Equal(t, "house", scene)

	require.NoError(t, r.Execute([]string{"-scene", "display"}))
	assert.Equal(t, "run", ran)
	assert.Equal(t, "display", scene)
}

func TestExecuteErrors(t *testing.T) {
	var ran, scene string
	r := newTestRegistry(&ran, &scene)

	assert.EqualError(t, r.Execute([]string{"fly"}), "unknown command: fly")
	assert.Error(t, r.Execute([]string{"run", "-bogus"}))
	assert.EqualError(t, NewRegistry("").Execute(nil), "missing subcommand")
}

func TestUsage(t *testing.T) {
	var ran, scene string
	var buf bytes.Buffer
	newTestRegistry(&ran, &scene).Usage(&buf)
	assert.Equal(t, "  run        run the viewer\n  validate   validate the viewer\n", buf.String())
}
