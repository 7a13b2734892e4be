package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
)

type gameUseCase interface {
	CreateGame(ctx context.Context, starting entity.Player) (*entity.Session, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	Restart(ctx context.Context, id string, starting entity.Player) (*entity.Session, error)
	DeleteGame(ctx context.Context, id string) error
}

// CLI is a hot-seat game: both players share one terminal.
type CLI struct {
	Games    gameUseCase
	Logger   *slog.Logger
	Out      io.Writer
	In       *bufio.Reader
	Output   *termenv.Output
	Starting entity.Player
}

// Play runs until the input is exhausted, the user quits or ctx is canceled.
func (that *CLI) Play(ctx context.Context) error {
	session, err := that.Games.CreateGame(ctx, that.Starting)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	gameID := session.ID
	defer func() {
		if err := that.Games.DeleteGame(context.WithoutCancel(ctx), gameID); err != nil {
			that.logger().Error("could not discard game", "gameID", gameID, "error", err)
		}
	}()

	for {
		RenderBoard(that.Out, that.output(), session.Snapshot())

		if err = ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(that.Out, "%s> ", prompt(session))
		line, readErr := that.In.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}

		cmd := strings.ToLower(strings.TrimSpace(line))
		if readErr != nil && cmd == "" {
			fmt.Fprintln(that.Out)
			return nil
		}

		switch cmd {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r", "restart":
			if session, err = that.Games.Restart(ctx, gameID, that.Starting); err != nil {
				return fmt.Errorf("failed to restart game: %w", err)
			}
		default:
			cell, convErr := strconv.Atoi(cmd)
			if convErr != nil {
				fmt.Fprintf(that.Out, "unknown command %q: type a cell 0-8, r to restart or q to quit\n", cmd)
				continue
			}

			next, turnErr := that.Games.MakeTurn(ctx, gameID, cell)
			if turnErr != nil {
				if next == nil {
					return fmt.Errorf("failed to make turn: %w", turnErr)
				}
				fmt.Fprintln(that.Out, "illegal move:", turnErr)
			}
			if next != nil {
				session = next
			}
		}
	}
}

func (that *CLI) output() *termenv.Output {
	if that.Output == nil {
		return termenv.NewOutput(that.Out, termenv.WithProfile(termenv.Ascii))
	}
	return that.Output
}

func (that *CLI) logger() *slog.Logger {
	if that.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return that.Logger
}

func prompt(session *entity.Session) string {
	if session.Game.IsEnded() {
		return "r/q"
	}
	return session.Game.CurrentPlayer().String()
}

// RenderBoard draws the grid followed by either the turn indicator or the result banner.
func RenderBoard(out io.Writer, output *termenv.Output, snapshot entity.SessionSnapshot) {
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	for row := 0; row < entity.BoardSide; row++ {
		for col := 0; col < entity.BoardSide; col++ {
			index := row*entity.BoardSide + col
			fmt.Fprintf(w, "[%s]\t", cellGlyph(output, snapshot.Board[index], index))
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()

	if snapshot.ShowTurn {
		fmt.Fprintf(out, "[%s]\n", snapshot.Message)
	}
	if snapshot.ShowResult {
		fmt.Fprintln(out, output.String(snapshot.Message).Bold())
	}
}

func cellGlyph(output *termenv.Output, mark string, index int) string {
	switch mark {
	case "X":
		return output.String(mark).Foreground(output.Color("1")).Bold().String()
	case "O":
		return output.String(mark).Foreground(output.Color("4")).Bold().String()
	default:
		return output.String(strconv.Itoa(index)).Faint().String()
	}
}
