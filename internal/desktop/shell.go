// Package desktop exposes native shell capabilities (version, settings,
// notifications, dialogs, updates) behind one interface. The variant is
// chosen once at startup: Native when running as a desktop app, Noop
// everywhere else.
package desktop

import (
	"context"

	"github.com/okian/proinvestix/pkg/logger"
)

// AppName titles notifications.
const AppName = "ProInvestiX"

// Fallbacks reported outside the desktop shell.
const (
	WebVersion  = "1.0.0"
	WebPlatform = "web"
)

// MessageKind selects the dialog style.
type MessageKind string

const (
	MessageInfo    MessageKind = "info"
	MessageError   MessageKind = "error"
	MessageWarning MessageKind = "warning"
)

// FileFilter restricts a file dialog to some extensions.
type FileFilter struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

// UpdateInfo is the outcome of an update check.
type UpdateInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Shell is the capability surface.
type Shell interface {
	IsDesktop() bool

	Version(ctx context.Context) (string, error)
	Platform(ctx context.Context) (string, error)
	AppDataDir(ctx context.Context) (string, error)

	GetSetting(ctx context.Context, key string) (string, bool, error)
	StoreSetting(ctx context.Context, key, value string) error

	Notify(ctx context.Context, title, body string) error
	Message(ctx context.Context, title, message string, kind MessageKind) error
	Confirm(ctx context.Context, title, message string) (bool, error)
	OpenFile(ctx context.Context, filters []FileFilter) (string, bool, error)
	SaveFile(ctx context.Context, defaultPath string, filters []FileFilter) (string, bool, error)

	// CheckUpdate never fails; errors are reported as no update.
	CheckUpdate(ctx context.Context) UpdateInfo
	InstallUpdate(ctx context.Context) error
	Exit(ctx context.Context, code int) error
}

// Select returns native when enabled, Noop otherwise.
func Select(enabled bool, native Shell) Shell {
	if enabled && native != nil {
		return native
	}
	return Noop{}
}

// NotifySuccess shows "✅ msg" titled with the app name.
func NotifySuccess(ctx context.Context, s Shell, msg string) error {
	return s.Notify(ctx, AppName, "✅ "+msg)
}

// NotifyError shows "❌ msg" titled with the app name.
func NotifyError(ctx context.Context, s Shell, msg string) error {
	return s.Notify(ctx, AppName, "❌ "+msg)
}

// ShowError opens an error dialog.
func ShowError(ctx context.Context, s Shell, title, message string) error {
	return s.Message(ctx, title, message, MessageError)
}

// Info describes the running application.
type Info struct {
	Version   string `json:"version"`
	Platform  string `json:"platform"`
	IsDesktop bool   `json:"isDesktop"`
}

// AppInfo queries version and platform, falling back to the web defaults
// outside the shell or when either query fails.
func AppInfo(ctx context.Context, s Shell, log logger.Logger) Info {
	info := Info{Version: WebVersion, Platform: WebPlatform}
	if !s.IsDesktop() {
		return info
	}
	version, err := s.Version(ctx)
	if err == nil {
		var platform string
		platform, err = s.Platform(ctx)
		if err == nil {
			return Info{Version: version, Platform: platform, IsDesktop: true}
		}
	}
	if log != nil {
		log.Error(ctx, "failed to get app info", logger.Error(err))
	}
	return info
}
