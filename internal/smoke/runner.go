package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/proinvestix/internal/adapters/http/client"
	"github.com/okian/proinvestix/internal/adapters/http/resources"
	"github.com/okian/proinvestix/internal/domain/model"
	"github.com/okian/proinvestix/internal/session"
	"github.com/okian/proinvestix/internal/storage"
	"github.com/okian/proinvestix/pkg/logger"
)

// Run executes the complete smoke run.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.APIPrefix == "" {
		config.APIPrefix = DefaultAPIPrefix
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	base := strings.TrimRight(config.BaseURL, "/")
	hc := &http.Client{Timeout: config.Timeout}
	log := logger.Get().Named("smoke")

	stats := &Stats{Requests: config.Requests, Refreshes: -1, StartTime: time.Now()}
	log.Info(ctx, "starting refresh smoke run",
		logger.String("baseURL", base),
		logger.Int("requests", config.Requests),
		logger.Int("workers", config.Workers))

	// Step 1: Check backend health
	if err := checkHealth(ctx, hc, base); err != nil {
		return nil, err
	}

	// Step 2: Sign in
	store := storage.NewMemory()
	c, err := client.New(base+config.APIPrefix, store, client.WithHTTPClient(hc), client.WithLogger(log))
	if err != nil {
		return nil, err
	}
	api := resources.New(c)
	if err := signIn(ctx, config, session.New(api.Auth, store, session.WithLogger(log))); err != nil {
		return nil, err
	}

	// Step 3: Invalidate the access token so every request starts with a 401
	before, counted := refreshCount(ctx, hc, base)
	if err := store.Set(ctx, storage.KeyAccessToken, "invalidated-"+uuid.NewString()); err != nil {
		return nil, fmt.Errorf("invalidate token: %w", err)
	}

	// Step 4: Fire the burst
	fire(ctx, api, config, stats, log)

	// Step 5: Read the refresh counter again
	if counted {
		if after, ok := refreshCount(ctx, hc, base); ok {
			stats.Refreshes = after - before
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	// Step 6: Verify
	if err := verify(stats); err != nil {
		return stats, err
	}
	log.Info(ctx, "smoke run passed")
	return stats, nil
}

func checkHealth(ctx context.Context, hc *http.Client, base string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}

func signIn(ctx context.Context, config *Config, sess *session.Session) error {
	err := sess.Login(ctx, config.Email, config.Password)
	if err == nil || !config.Register {
		return err
	}
	username := config.Username
	if username == "" {
		username, _, _ = strings.Cut(config.Email, "@")
	}
	if err := sess.Register(ctx, model.RegisterRequest{
		Username: username,
		Email:    config.Email,
		Password: config.Password,
	}); err != nil {
		return err
	}
	return sess.Login(ctx, config.Email, config.Password)
}

// refreshCount reads the stub backend's refresh counter; ok is false when
// the backend has none.
func refreshCount(ctx context.Context, hc *http.Client, base string) (int64, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/debug/refresh-count", nil)
	if err != nil {
		return 0, false
	}
	resp, err := hc.Do(req)
	if err != nil {
		return 0, false
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return 0, false
	}
	var body struct {
		Count int64 `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, false
	}
	return body.Count, true
}

// fire runs config.Requests authenticated calls on config.Workers workers,
// alternating between /auth/me and /talents.
func fire(ctx context.Context, api *resources.API, config *Config, stats *Stats, log logger.Logger) {
	var successful, failed atomic.Int64

	jobs := make(chan int, config.Workers*2)
	var wg sync.WaitGroup
	for range config.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				var err error
				if i%2 == 0 {
					_, err = api.Auth.Me(ctx)
				} else {
					_, err = api.Talents.List(ctx, nil)
				}
				if err != nil {
					failed.Add(1)
					if config.Verbose {
						log.Warn(ctx, "request failed", logger.Int("request", i), logger.Error(err))
					}
					continue
				}
				successful.Add(1)
			}
		}()
	}

feed:
	for i := range config.Requests {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	stats.Successful = int(successful.Load())
	stats.Failed = int(failed.Load())
}

func verify(stats *Stats) error {
	if stats.Successful != stats.Requests {
		return fmt.Errorf("%w: %d of %d requests failed", ErrVerification, stats.Requests-stats.Successful, stats.Requests)
	}
	if stats.Refreshes >= 0 && stats.Refreshes != 1 {
		return fmt.Errorf("%w: backend saw %d refresh calls, want 1", ErrVerification, stats.Refreshes)
	}
	return nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var perSecond float64
	if stats.Duration > 0 {
		perSecond = float64(stats.Requests) / stats.Duration.Seconds()
	}
	log.Info(ctx, "final statistics",
		logger.Int("requests", stats.Requests),
		logger.Int("successful", stats.Successful),
		logger.Int("failed", stats.Failed),
		logger.Int64("refreshes", stats.Refreshes),
		logger.Duration("duration", stats.Duration),
		logger.Float64("requestsPerSecond", perSecond))
}
