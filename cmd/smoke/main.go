// Command smoke checks that concurrent requests with an invalidated access
// token share a single refresh.
package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/proinvestix/internal/smoke"
	"github.com/okian/proinvestix/pkg/logger"
)

// Default configuration constants.
const (
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Backend root URL")
		prefix   = flag.String("prefix", smoke.DefaultAPIPrefix, "API mount point")
		email    = flag.String("email", "smoke@proinvestix.local", "Account email")
		password = flag.String("password", "smoke-password", "Account password")
		register = flag.Bool("register", true, "Register the account when login fails")
		requests = flag.Int("requests", smoke.DefaultRequests, "Number of authenticated requests")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", smoke.DefaultTimeout, "HTTP request timeout")
		format   = flag.String("log-format", logger.FormatText, "Log format (text or json)")
		verbose  = flag.Bool("verbose", false, "Log every failed request")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := logger.Init(logger.WithFormat(*format), logger.WithCaller(false)); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &smoke.Config{
		BaseURL:   *baseURL,
		APIPrefix: *prefix,
		Email:     *email,
		Password:  *password,
		Register:  *register,
		Requests:  *requests,
		Workers:   *workers,
		Timeout:   *timeout,
		Verbose:   *verbose,
	}

	if _, err := smoke.Run(ctx, config); err != nil {
		_, _ = os.Stderr.WriteString("Smoke run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
