package desktop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/okian/proinvestix/internal/storage"
	"github.com/okian/proinvestix/pkg/logger"
)

// Shell command names.
const (
	CmdGetVersion       = "get_version"
	CmdGetPlatform      = "get_platform"
	CmdGetAppDataDir    = "get_app_data_dir"
	CmdStoreSetting     = "store_setting"
	CmdGetSetting       = "get_setting"
	CmdShowNotification = "show_notification"
)

const settingPrefix = "setting:"

// Invoker runs a named shell command. Results are decoded into out the way
// a JSON bridge would, so out is a pointer to the expected type.
type Invoker interface {
	Invoke(ctx context.Context, cmd string, args map[string]any, out any) error
}

// LocalInvoker serves the shell commands in-process.
type LocalInvoker struct {
	version  string
	dataDir  string
	settings storage.Store
	notifier io.Writer
	logger   logger.Logger
}

// LocalOption applies a configuration option to the LocalInvoker.
type LocalOption func(*LocalInvoker)

// WithDataDir sets the application data directory.
func WithDataDir(dir string) LocalOption {
	return func(l *LocalInvoker) {
		if dir != "" {
			l.dataDir = dir
		}
	}
}

// WithSettings sets the store settings are persisted in.
func WithSettings(s storage.Store) LocalOption {
	return func(l *LocalInvoker) {
		if s != nil {
			l.settings = s
		}
	}
}

// WithNotifier sets where notifications are printed.
func WithNotifier(w io.Writer) LocalOption {
	return func(l *LocalInvoker) {
		l.notifier = w
	}
}

// WithInvokerLogger sets the logger.
func WithInvokerLogger(log logger.Logger) LocalOption {
	return func(l *LocalInvoker) {
		if log != nil {
			l.logger = log
		}
	}
}

// NewLocalInvoker creates an invoker reporting version as the app version.
func NewLocalInvoker(version string, opts ...LocalOption) *LocalInvoker {
	l := &LocalInvoker{
		version:  version,
		settings: storage.NewMemory(),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.dataDir == "" {
		l.dataDir = DefaultDataDir()
	}
	return l
}

// DefaultDataDir is <user config dir>/proinvestix, or a temp dir when the
// config dir is unknown.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "proinvestix")
}

// Invoke implements Invoker.
func (l *LocalInvoker) Invoke(ctx context.Context, cmd string, args map[string]any, out any) error {
	switch cmd {
	case CmdGetVersion:
		return assign(out, l.version)
	case CmdGetPlatform:
		return assign(out, runtime.GOOS+"-"+runtime.GOARCH)
	case CmdGetAppDataDir:
		return assign(out, l.dataDir)
	case CmdStoreSetting:
		key, err := stringArg(cmd, args, "key")
		if err != nil {
			return err
		}
		value, err := stringArg(cmd, args, "value")
		if err != nil {
			return err
		}
		l.logger.Debug(ctx, "storing setting", logger.String("key", key))
		return l.settings.Set(ctx, settingPrefix+key, value)
	case CmdGetSetting:
		key, err := stringArg(cmd, args, "key")
		if err != nil {
			return err
		}
		value, ok, err := l.settings.Get(ctx, settingPrefix+key)
		if err != nil {
			return err
		}
		if !ok {
			return assign(out, nil)
		}
		return assign(out, value)
	case CmdShowNotification:
		title, err := stringArg(cmd, args, "title")
		if err != nil {
			return err
		}
		body, err := stringArg(cmd, args, "body")
		if err != nil {
			return err
		}
		l.logger.Info(ctx, "notification", logger.String("title", title), logger.String("body", body))
		if l.notifier != nil {
			_, err = fmt.Fprintf(l.notifier, "[%s] %s\n", title, body)
		}
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

func stringArg(cmd string, args map[string]any, name string) (string, error) {
	v, ok := args[name].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s needs string %q", ErrInvalidArgs, cmd, name)
	}
	return v, nil
}

// assign copies v into out through JSON, as a bridge would.
func assign(out, v any) error {
	if out == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
