package desktop

import (
	"context"
	"os"

	"github.com/okian/proinvestix/pkg/logger"
	"github.com/okian/proinvestix/pkg/metrics"
)

// Native is the Shell backed by an Invoker, a Prompter for dialogs and an
// Updater for releases.
type Native struct {
	invoker    Invoker
	prompter   Prompter
	updater    Updater
	relauncher Relauncher
	exit       func(code int)
	logger     logger.Logger
}

var _ Shell = (*Native)(nil)

// NativeOption applies a configuration option to Native.
type NativeOption func(*Native)

// WithPrompter sets the dialog implementation.
func WithPrompter(p Prompter) NativeOption {
	return func(n *Native) { n.prompter = p }
}

// WithUpdater sets the release source. Without one no update is ever found.
func WithUpdater(u Updater) NativeOption {
	return func(n *Native) { n.updater = u }
}

// WithRelauncher sets what runs after an update is installed.
func WithRelauncher(r Relauncher) NativeOption {
	return func(n *Native) { n.relauncher = r }
}

// WithExit replaces os.Exit.
func WithExit(fn func(code int)) NativeOption {
	return func(n *Native) {
		if fn != nil {
			n.exit = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) NativeOption {
	return func(n *Native) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewNative creates the desktop-backed Shell.
func NewNative(inv Invoker, opts ...NativeOption) *Native {
	n := &Native{
		invoker: inv,
		exit:    os.Exit,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.Named("desktop")
	return n
}

func (n *Native) IsDesktop() bool { return true }

func (n *Native) Version(ctx context.Context) (string, error) {
	var v string
	err := n.invoker.Invoke(ctx, CmdGetVersion, nil, &v)
	return v, err
}

func (n *Native) Platform(ctx context.Context) (string, error) {
	var v string
	err := n.invoker.Invoke(ctx, CmdGetPlatform, nil, &v)
	return v, err
}

func (n *Native) AppDataDir(ctx context.Context) (string, error) {
	var v string
	err := n.invoker.Invoke(ctx, CmdGetAppDataDir, nil, &v)
	return v, err
}

func (n *Native) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var v *string
	if err := n.invoker.Invoke(ctx, CmdGetSetting, map[string]any{"key": key}, &v); err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return *v, true, nil
}

func (n *Native) StoreSetting(ctx context.Context, key, value string) error {
	return n.invoker.Invoke(ctx, CmdStoreSetting, map[string]any{"key": key, "value": value}, nil)
}

func (n *Native) Notify(ctx context.Context, title, body string) error {
	return n.invoker.Invoke(ctx, CmdShowNotification, map[string]any{"title": title, "body": body}, nil)
}

func (n *Native) Message(ctx context.Context, title, message string, kind MessageKind) error {
	if n.prompter == nil {
		return ErrNoPrompter
	}
	return n.prompter.Message(ctx, title, message, kind)
}

func (n *Native) Confirm(ctx context.Context, title, message string) (bool, error) {
	if n.prompter == nil {
		return false, ErrNoPrompter
	}
	return n.prompter.Confirm(ctx, title, message)
}

func (n *Native) OpenFile(ctx context.Context, filters []FileFilter) (string, bool, error) {
	if n.prompter == nil {
		return "", false, ErrNoPrompter
	}
	return n.prompter.PickPath(ctx, "Bestand openen", "", filters)
}

func (n *Native) SaveFile(ctx context.Context, defaultPath string, filters []FileFilter) (string, bool, error) {
	if n.prompter == nil {
		return "", false, ErrNoPrompter
	}
	return n.prompter.PickPath(ctx, "Bestand opslaan", defaultPath, filters)
}

// CheckUpdate implements Shell.
func (n *Native) CheckUpdate(ctx context.Context) UpdateInfo {
	if n.updater == nil {
		return UpdateInfo{}
	}
	u, err := n.updater.Check(ctx)
	if err != nil {
		metrics.RecordUpdateCheck("error")
		n.logger.Error(ctx, "update check failed", logger.Error(err))
		return UpdateInfo{}
	}
	if u == nil {
		metrics.RecordUpdateCheck("none")
		return UpdateInfo{}
	}
	metrics.RecordUpdateCheck("available")
	return UpdateInfo{Available: true, Version: u.Version, Notes: u.Notes}
}

// InstallUpdate checks again, installs whatever is found and relaunches.
// It returns ErrNoUpdate when the second check finds nothing.
func (n *Native) InstallUpdate(ctx context.Context) error {
	if n.updater == nil {
		return ErrNoUpdate
	}
	u, err := n.updater.Check(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNoUpdate
	}
	if err := u.Install(ctx); err != nil {
		metrics.RecordUpdateInstall("failure")
		return err
	}
	metrics.RecordUpdateInstall("success")
	n.logger.Info(ctx, "update installed", logger.String("version", u.Version))
	if n.relauncher == nil {
		return nil
	}
	return n.relauncher.Relaunch(ctx, u.Path)
}

func (n *Native) Exit(_ context.Context, code int) error {
	n.exit(code)
	return nil
}
