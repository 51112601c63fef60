package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/cmd/smelt/commands"
	"go.trai.ch/smelt/internal/app"
	"go.trai.ch/smelt/internal/build"
)

type mockApp struct {
	compileFunc func(path string, opts app.CompileOptions) error
}

func (m *mockApp) CompileFile(path string, opts app.CompileOptions) error {
	if m.compileFunc != nil {
		return m.compileFunc(path, opts)
	}
	return nil
}

func TestCommands_Compile(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedPath string
		var capturedOpts app.CompileOptions
		called := false

		mock := &mockApp{
			compileFunc: func(path string, opts app.CompileOptions) error {
				capturedPath = path
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"compile", "main.smt", "--name", "foo.bar", "--inspect"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "main.smt", capturedPath)
		assert.Equal(t, "foo.bar", capturedOpts.Name)
		assert.True(t, capturedOpts.Inspect)
	})

	t.Run("returns error on compile failure", func(t *testing.T) {
		mock := &mockApp{
			compileFunc: func(string, app.CompileOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"compile", "main.smt"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no file provided", func(t *testing.T) {
		mock := &mockApp{
			compileFunc: func(string, app.CompileOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"compile"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
