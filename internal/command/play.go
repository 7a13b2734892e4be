package command

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	"github.com/muesli/termenv"

	"github.com/Juansebayala/react-clase-dos-master/internal/cli"
	"github.com/Juansebayala/react-clase-dos-master/internal/config"
	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
	"github.com/Juansebayala/react-clase-dos-master/internal/repository"
	"github.com/Juansebayala/react-clase-dos-master/internal/usecase"
)

// Play runs a hot-seat game in the terminal.
type Play struct {
	Config *config.Config
	Logger *slog.Logger

	In  io.Reader
	Out io.Writer
}

func (*Play) Name() string     { return "play" }
func (*Play) Synopsis() string { return "Play tic-tac-toe from the command line" }
func (*Play) Usage() string {
	return `play [-first X|O] [-color]

Play tic-tac-toe on the command-line, two humans sharing the keyboard.
Type a cell number 0-8 to mark it, r to restart, q to quit.
`
}

func (c *Play) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.Config.StartingPlayer, "first", c.Config.StartingPlayer, "player who moves first")
	flags.BoolVar(&c.Config.Color, "color", c.Config.Color, "colour the marks")
}

func (c *Play) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	starting, err := entity.ParsePlayer(c.Config.StartingPlayer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	in, out := c.In, c.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	output := termenv.NewOutput(out)
	if !c.Config.Color {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	}

	st := &cli.CLI{
		Games:    usecase.NewGameManager(c.Logger, repository.NewGameRepository(), nil, 1),
		Logger:   c.Logger,
		Out:      out,
		In:       bufio.NewReader(in),
		Output:   output,
		Starting: starting,
	}

	if err = st.Play(ctx); err != nil {
		c.Logger.Error("play failed", "error", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
