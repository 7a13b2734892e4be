package command

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juansebayala/react-clase-dos-master/internal/config"
)

func newTestConfig() *config.Config {
	return &config.Config{
		LogLevel:       "info",
		Host:           "127.0.0.1",
		HTTPPort:       "0",
		SocketPort:     "0",
		StartingPlayer: "X",
		MaxGames:       4,
		Color:          true,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestPlay_Execute(t *testing.T) {
	t.Run("Flags pick the first player and disable colour", func(t *testing.T) {
		out := &bytes.Buffer{}
		cmd := &Play{
			Config: newTestConfig(),
			Logger: discardLogger(),
			In:     strings.NewReader("4\nq\n"),
			Out:    out,
		}

		flags := flag.NewFlagSet("play", flag.ContinueOnError)
		cmd.SetFlags(flags)
		require.NoError(t, flags.Parse([]string{"-first", "O", "-color=false"}))

		status := cmd.Execute(context.Background(), flags)

		assert.Equal(t, subcommands.ExitSuccess, status)
		assert.Contains(t, out.String(), "[It's the turn of player: O]")
		assert.Contains(t, out.String(), "[O]")
		assert.NotContains(t, out.String(), "\x1b[")
	})

	t.Run("Unknown first player is a usage error", func(t *testing.T) {
		conf := newTestConfig()
		conf.StartingPlayer = "Z"

		cmd := &Play{Config: conf, Logger: discardLogger(), In: strings.NewReader(""), Out: io.Discard}

		assert.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), flag.NewFlagSet("play", flag.ContinueOnError)))
	})
}

func TestServe_Execute(t *testing.T) {
	t.Run("Stops cleanly when the context ends", func(t *testing.T) {
		cmd := &Serve{Config: newTestConfig(), Logger: discardLogger()}

		flags := flag.NewFlagSet("serve", flag.ContinueOnError)
		cmd.SetFlags(flags)
		require.NoError(t, flags.Parse([]string{"-max-games", "2"}))
		assert.Equal(t, 2, cmd.Config.MaxGames)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Equal(t, subcommands.ExitSuccess, cmd.Execute(ctx, flags))
	})

	t.Run("Bad starting player fails", func(t *testing.T) {
		conf := newTestConfig()
		conf.StartingPlayer = "Z"

		cmd := &Serve{Config: conf, Logger: discardLogger()}

		assert.Equal(t, subcommands.ExitFailure, cmd.Execute(context.Background(), flag.NewFlagSet("serve", flag.ContinueOnError)))
	})
}
