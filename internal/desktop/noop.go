package desktop

import "context"

// Noop is the Shell used outside the desktop app. Every call succeeds and
// returns zero values.
type Noop struct{}

var _ Shell = Noop{}

func (Noop) IsDesktop() bool { return false }

func (Noop) Version(context.Context) (string, error) { return "", nil }

func (Noop) Platform(context.Context) (string, error) { return "", nil }

func (Noop) AppDataDir(context.Context) (string, error) { return "", nil }

func (Noop) GetSetting(context.Context, string) (string, bool, error) { return "", false, nil }

func (Noop) StoreSetting(context.Context, string, string) error { return nil }

func (Noop) Notify(context.Context, string, string) error { return nil }

func (Noop) Message(context.Context, string, string, MessageKind) error { return nil }

func (Noop) Confirm(context.Context, string, string) (bool, error) { return false, nil }

func (Noop) OpenFile(context.Context, []FileFilter) (string, bool, error) { return "", false, nil }

func (Noop) SaveFile(context.Context, string, []FileFilter) (string, bool, error) {
	return "", false, nil
}

func (Noop) CheckUpdate(context.Context) UpdateInfo { return UpdateInfo{} }

func (Noop) InstallUpdate(context.Context) error { return nil }

func (Noop) Exit(context.Context, int) error { return nil }
