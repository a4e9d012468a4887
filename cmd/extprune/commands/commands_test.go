package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extprune/cmd/extprune/commands"
	"go.trai.ch/extprune/internal/app"
	"go.trai.ch/extprune/internal/build"
)

type mockApp struct {
	pruneFunc   func(ctx context.Context, keepFile string, opts app.PruneOptions) error
	historyFunc func(ctx context.Context, opts app.HistoryOptions) error
}

func (m *mockApp) Prune(ctx context.Context, keepFile string, opts app.PruneOptions) error {
	if m.pruneFunc != nil {
		return m.pruneFunc(ctx, keepFile, opts)
	}
	return nil
}

func (m *mockApp) History(ctx context.Context, opts app.HistoryOptions) error {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, opts)
	}
	return nil
}

type logSettings struct {
	json bool
}

func (l *logSettings) SetJSON(enable bool) {
	l.json = enable
}

func TestCommands_Prune(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.PruneOptions
		var capturedKeepFile string

		mock := &mockApp{
			pruneFunc: func(_ context.Context, keepFile string, opts app.PruneOptions) error {
				capturedKeepFile = keepFile
				capturedOpts = opts
				return nil
			},
		}
		log := &logSettings{}

		cli := commands.New(mock, log)
		cli.SetArgs([]string{
			"--config", "/etc/extprune.yaml", "--log-json",
			"prune", "keep.txt", "-d", "/ext", "-n", "-v", "--keep-all-versions", "-p",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "keep.txt", capturedKeepFile)
		assert.Equal(t, app.PruneOptions{
			ConfigPath:      "/etc/extprune.yaml",
			ExtensionsDir:   "/ext",
			DryRun:          true,
			Verbose:         true,
			KeepAllVersions: true,
			Progress:        true,
		}, capturedOpts)
		assert.True(t, log.json)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.PruneOptions
		mock := &mockApp{
			pruneFunc: func(_ context.Context, _ string, opts app.PruneOptions) error {
				capturedOpts = opts
				return nil
			},
		}
		log := &logSettings{}

		cli := commands.New(mock, log)
		cli.SetArgs([]string{"prune", "keep.txt"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.PruneOptions{}, capturedOpts)
		assert.False(t, log.json)
	})

	t.Run("requires a keep file", func(t *testing.T) {
		mock := &mockApp{
			pruneFunc: func(context.Context, string, app.PruneOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, &logSettings{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"prune"})

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns error on prune failure", func(t *testing.T) {
		mock := &mockApp{
			pruneFunc: func(context.Context, string, app.PruneOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, &logSettings{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"prune", "keep.txt"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_History(t *testing.T) {
	var captured []app.HistoryOptions
	mock := &mockApp{
		historyFunc: func(_ context.Context, opts app.HistoryOptions) error {
			captured = append(captured, opts)
			return nil
		},
	}

	for _, args := range [][]string{
		{"history"},
		{"-c", "/s.yaml", "history", "/ext"},
	} {
		cli := commands.New(mock, &logSettings{})
		cli.SetArgs(args)
		require.NoError(t, cli.Execute(context.Background()))
	}

	assert.Equal(t, []app.HistoryOptions{
		{},
		{ConfigPath: "/s.yaml", ExtensionsDir: "/ext"},
	}, captured)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, &logSettings{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "extprune version "+build.Version)
}
