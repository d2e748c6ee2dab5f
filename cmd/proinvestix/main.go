// Command proinvestix is a terminal client for the ProInvestiX platform.
// Every command prints JSON to stdout; failures go to stderr with exit
// status 1.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/okian/proinvestix/internal/app"
	"github.com/okian/proinvestix/internal/config"
	"github.com/okian/proinvestix/pkg/logger"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...app.Option) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return 1
		}
		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 1
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "failed to load config:", err)
		return 1
	}

	if err := logger.Init(logger.WithWriter(stderr), logger.WithFormat(cfg.LogFormat), logger.WithCaller(false)); err != nil {
		_, _ = fmt.Fprintln(stderr, "failed to initialize logging:", err)
		return 1
	}
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	app.ConfigureMetrics(cfg)

	a, err := app.New(cfg, append([]app.Option{app.WithLogger(log)}, opts...)...)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "failed to build app:", err)
		return 1
	}

	out, err := cmd.run(ctx, &env{app: a, cfg: cfg, log: log}, args[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			_, _ = fmt.Fprintf(stderr, "usage: proinvestix %s %s\n", args[0], cmd.usage)
		} else {
			_, _ = fmt.Fprintln(stderr, "error:", err)
		}
		return 1
	}

	if err := printJSON(stdout, out); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	_, _ = fmt.Fprintln(w, "usage: proinvestix <command> [flags]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "commands:")
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %-16s %s\n", name, commands[name].summary)
	}
}
