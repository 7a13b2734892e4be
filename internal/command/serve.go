package command

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	app "github.com/Juansebayala/react-clase-dos-master/internal"
	"github.com/Juansebayala/react-clase-dos-master/internal/config"
)

// Serve exposes games over HTTP and WebSocket.
type Serve struct {
	Config *config.Config
	Logger *slog.Logger
}

func (*Serve) Name() string     { return "serve" }
func (*Serve) Synopsis() string { return "Serve tic-tac-toe games over HTTP and WebSocket" }
func (*Serve) Usage() string {
	return `serve [-host addr] [-http-port port] [-socket-port port]

Run the REST API and the WebSocket server until interrupted.
`
}

func (c *Serve) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.Config.Host, "host", c.Config.Host, "bind host")
	flags.StringVar(&c.Config.HTTPPort, "http-port", c.Config.HTTPPort, "REST API port")
	flags.StringVar(&c.Config.SocketPort, "socket-port", c.Config.SocketPort, "WebSocket port")
	flags.IntVar(&c.Config.MaxGames, "max-games", c.Config.MaxGames, "maximum number of live games, 0 for no limit")
}

func (c *Serve) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := app.RunApp(ctx, c.Logger, c.Config); err != nil {
		c.Logger.Error("app run failed", "error", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
