package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/Juansebayala/react-clase-dos-master/internal/command"
	"github.com/Juansebayala/react-clase-dos-master/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the chosen command.
func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			code = 1
		}
	}()

	conf := initConfig()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&command.Serve{Config: conf, Logger: initLogger(os.Stdout, conf.Level())}, "")
	// the board owns stdout while playing
	subcommands.Register(&command.Play{Config: conf, Logger: initLogger(os.Stderr, max(conf.Level(), slog.LevelWarn))}, "")

	flag.Parse()

	return int(subcommands.Execute(context.Background()))
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
