// Package app wires the client platform together from a Config.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/okian/proinvestix/internal/adapters/http/client"
	"github.com/okian/proinvestix/internal/adapters/http/resources"
	"github.com/okian/proinvestix/internal/config"
	"github.com/okian/proinvestix/internal/desktop"
	"github.com/okian/proinvestix/internal/routes"
	"github.com/okian/proinvestix/internal/session"
	"github.com/okian/proinvestix/internal/storage"
	"github.com/okian/proinvestix/pkg/logger"
)

// ErrNilConfig is returned by New without a Config.
var ErrNilConfig = errors.New("config is required")

// App owns the component graph of one client process.
type App struct {
	mu sync.Mutex

	cfg       *config.Config
	store     storage.Store
	client    *client.Client
	api       *resources.API
	session   *session.Session
	shell     desktop.Shell
	watcher   *desktop.UpdateWatcher
	navigator routes.Navigator

	// Overrides
	httpClient *http.Client
	invoker    desktop.Invoker
	prompter   desktop.Prompter
	updater    desktop.Updater
	relauncher desktop.Relauncher

	// State
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	outcome desktop.Outcome

	logger logger.Logger
}

// Option applies a configuration option to the App.
type Option func(*App)

// WithLogger sets a custom logger for the app.
func WithLogger(l logger.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithStore replaces the session store chosen from the config.
func WithStore(s storage.Store) Option {
	return func(a *App) {
		if s != nil {
			a.store = s
		}
	}
}

// WithNavigator sets where the client goes when the session ends.
func WithNavigator(n routes.Navigator) Option {
	return func(a *App) {
		if n != nil {
			a.navigator = n
		}
	}
}

// WithHTTPClient sets the transport for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) { a.httpClient = hc }
}

// WithInvoker replaces the in-process desktop invoker.
func WithInvoker(inv desktop.Invoker) Option {
	return func(a *App) { a.invoker = inv }
}

// WithPrompter replaces the terminal prompter.
func WithPrompter(p desktop.Prompter) Option {
	return func(a *App) { a.prompter = p }
}

// WithUpdater replaces the manifest updater.
func WithUpdater(u desktop.Updater) Option {
	return func(a *App) { a.updater = u }
}

// WithRelauncher replaces the exec relauncher.
func WithRelauncher(r desktop.Relauncher) Option {
	return func(a *App) { a.relauncher = r }
}

// New builds every component. Nothing talks to the network until used.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	a := &App{cfg: cfg, logger: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}

	if a.store == nil {
		a.store = newStore(cfg)
	}
	if a.navigator == nil {
		a.navigator = routes.NewHistory("/", a.logger)
	}

	clientOpts := []client.Option{
		client.WithTimeout(cfg.RequestTimeout()),
		client.WithLogger(a.logger),
		client.WithOnSessionExpired(a.sessionExpired),
	}
	if a.httpClient != nil {
		clientOpts = append(clientOpts, client.WithHTTPClient(a.httpClient))
	}
	c, err := client.New(cfg.APIBaseURL, a.store, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("build client: %w", err)
	}
	a.client = c
	a.api = resources.New(c)
	a.session = session.New(a.api.Auth, a.store, session.WithLogger(a.logger))

	a.shell = desktop.Select(cfg.DesktopEnabled, a.nativeShell())
	a.watcher = desktop.NewUpdateWatcher(a.shell,
		desktop.WithDelay(cfg.UpdateCheckDelay()),
		desktop.WithWatcherLogger(a.logger),
	)
	return a, nil
}

func newStore(cfg *config.Config) storage.Store {
	if cfg.SessionFile == "" {
		return storage.NewMemory()
	}
	return storage.NewFile(cfg.SessionFile)
}

// nativeShell returns nil when the desktop layer is off.
func (a *App) nativeShell() desktop.Shell {
	if !a.cfg.DesktopEnabled {
		return nil
	}
	dataDir := desktop.DefaultDataDir()
	if a.cfg.SessionFile != "" {
		dataDir = filepath.Dir(a.cfg.SessionFile)
	}

	inv := a.invoker
	if inv == nil {
		inv = desktop.NewLocalInvoker(a.cfg.AppVersion,
			desktop.WithDataDir(dataDir),
			desktop.WithSettings(a.store),
			desktop.WithNotifier(os.Stderr),
			desktop.WithInvokerLogger(a.logger),
		)
	}
	prompter := a.prompter
	if prompter == nil {
		prompter = desktop.NewTerminalPrompter(os.Stdin, os.Stderr)
	}
	updater := a.updater
	if updater == nil && a.cfg.UpdateManifestURL != "" {
		updater = desktop.NewManifestUpdater(a.cfg.UpdateManifestURL, a.cfg.AppVersion,
			filepath.Join(dataDir, "updates"), desktop.WithUpdaterLogger(a.logger))
	}
	relauncher := a.relauncher
	if relauncher == nil {
		relauncher = desktop.ExecRelauncher{}
	}

	opts := []desktop.NativeOption{
		desktop.WithPrompter(prompter),
		desktop.WithRelauncher(relauncher),
		desktop.WithLogger(a.logger),
	}
	if updater != nil {
		opts = append(opts, desktop.WithUpdater(updater))
	}
	return desktop.NewNative(inv, opts...)
}

// sessionExpired runs once per failed refresh: the session drops its user
// and the client is sent to the login page.
func (a *App) sessionExpired(ctx context.Context) {
	a.session.Expire(ctx)
	if err := a.navigator.Navigate(ctx, routes.LoginPath); err != nil {
		a.logger.Error(ctx, "failed to navigate to login", logger.Error(err))
	}
}

// Start restores the persisted session and launches the update watcher.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started {
		return nil
	}

	if err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "starting signed out", logger.Error(err))
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	a.cancel = cancel
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		outcome := a.watcher.Run(runCtx)
		a.mu.Lock()
		a.outcome = outcome
		a.mu.Unlock()
	}()

	a.started = true
	a.logger.Info(ctx, "app started",
		logger.String("api", a.cfg.APIBaseURL),
		logger.Bool("desktop", a.shell.IsDesktop()),
		logger.Bool("authenticated", a.session.IsAuthenticated()),
	)
	return nil
}

// Wait blocks until the update watcher has finished.
func (a *App) Wait() {
	a.wg.Wait()
}

// Stop cancels the update watcher and waits for it.
func (a *App) Stop() {
	a.mu.Lock()
	if !a.started {
		a.mu.Unlock()
		return
	}
	a.cancel()
	a.started = false
	a.mu.Unlock()

	a.wg.Wait()
	a.logger.Info(context.Background(), "app stopped")
}

// UpdateOutcome is the result of the last watcher run, empty while running.
func (a *App) UpdateOutcome() desktop.Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.outcome
}

// CheckForUpdate runs one update check through the watcher right away,
// skipping its startup delay. The outcome is also kept for UpdateOutcome.
func (a *App) CheckForUpdate(ctx context.Context) desktop.Outcome {
	outcome := desktop.OutcomeSkipped
	if a.shell.IsDesktop() {
		outcome = a.watcher.CheckNow(ctx)
	}
	a.mu.Lock()
	a.outcome = outcome
	a.mu.Unlock()
	return outcome
}

func (a *App) Config() *config.Config { return a.cfg }
func (a *App) Store() storage.Store { return a.store }
func (a *App) Client() *client.Client { return a.client }
func (a *App) API() *resources.API { return a.api }
func (a *App) Session() *session.Session { return a.session }
func (a *App) Shell() desktop.Shell { return a.shell }
func (a *App) Navigator() routes.Navigator { return a.navigator }
