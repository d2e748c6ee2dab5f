package desktop_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okian/proinvestix/internal/desktop"
	"github.com/okian/proinvestix/internal/storage"
)

type mockInvoker struct{ mock.Mock }

func (m *mockInvoker) Invoke(_ context.Context, cmd string, args map[string]any, out any) error {
	return m.Called(cmd, args, out).Error(0)
}

type mockPrompter struct{ mock.Mock }

func (m *mockPrompter) Message(_ context.Context, title, message string, kind desktop.MessageKind) error {
	return m.Called(title, message, kind).Error(0)
}

func (m *mockPrompter) Confirm(_ context.Context, title, message string) (bool, error) {
	args := m.Called(title, message)
	return args.Bool(0), args.Error(1)
}

func (m *mockPrompter) PickPath(_ context.Context, title, defaultPath string, _ []desktop.FileFilter) (string, bool, error) {
	args := m.Called(title, defaultPath)
	return args.String(0), args.Bool(1), args.Error(2)
}

type mockUpdater struct{ mock.Mock }

func (m *mockUpdater) Check(context.Context) (*desktop.Update, error) {
	args := m.Called()
	u, _ := args.Get(0).(*desktop.Update)
	return u, args.Error(1)
}

type mockRelauncher struct{ mock.Mock }

func (m *mockRelauncher) Relaunch(_ context.Context, path string) error {
	return m.Called(path).Error(0)
}

func TestSelect(t *testing.T) {
	native := desktop.NewNative(desktop.NewLocalInvoker("2.0.0"))

	assert.Equal(t, desktop.Noop{}, desktop.Select(false, native))
	assert.Equal(t, desktop.Noop{}, desktop.Select(true, nil))
	assert.Same(t, native, desktop.Select(true, native))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var s desktop.Shell = desktop.Noop{}

	assert.False(t, s.IsDesktop())
	assert.Equal(t, desktop.UpdateInfo{}, s.CheckUpdate(ctx))
	ok, err := s.Confirm(ctx, "t", "m")
	assert.NoError(t, err)
	assert.False(t, ok)
	_, found, err := s.GetSetting(ctx, "theme")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, desktop.NotifySuccess(ctx, s, "ok"))
	assert.NoError(t, s.InstallUpdate(ctx))
	assert.NoError(t, s.Exit(ctx, 0))

	info := desktop.AppInfo(ctx, s, nil)
	assert.Equal(t, desktop.Info{Version: "1.0.0", Platform: "web"}, info)
}

func TestNativeWithLocalInvoker(t *testing.T) {
	ctx := context.Background()
	var notes bytes.Buffer
	dir := t.TempDir()
	inv := desktop.NewLocalInvoker("2.1.0",
		desktop.WithDataDir(dir),
		desktop.WithSettings(storage.NewMemory()),
		desktop.WithNotifier(&notes),
	)
	n := desktop.NewNative(inv)

	version, err := n.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", version)

	platform, err := n.Platform(ctx)
	require.NoError(t, err)
	assert.Equal(t, runtime.GOOS+"-"+runtime.GOARCH, platform)

	dataDir, err := n.AppDataDir(ctx)
	require.NoError(t, err)
	assert.Equal(t, dir, dataDir)

	_, found, err := n.GetSetting(ctx, "locale")
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, n.StoreSetting(ctx, "locale", "nl-NL"))
	value, found, err := n.GetSetting(ctx, "locale")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "nl-NL", value)

	require.NoError(t, desktop.NotifySuccess(ctx, n, "Opgeslagen"))
	require.NoError(t, desktop.NotifyError(ctx, n, "Mislukt"))
	assert.Equal(t, "[ProInvestiX] ✅ Opgeslagen\n[ProInvestiX] ❌ Mislukt\n", notes.String())

	info := desktop.AppInfo(ctx, n, nil)
	assert.Equal(t, desktop.Info{Version: "2.1.0", Platform: platform, IsDesktop: true}, info)

	_, _, err = n.OpenFile(ctx, nil)
	assert.ErrorIs(t, err, desktop.ErrNoPrompter)
}

func TestLocalInvokerErrors(t *testing.T) {
	ctx := context.Background()
	inv := desktop.NewLocalInvoker("1.0.0")

	assert.ErrorIs(t, inv.Invoke(ctx, "open_devtools", nil, nil), desktop.ErrUnknownCommand)
	assert.ErrorIs(t, inv.Invoke(ctx, desktop.CmdStoreSetting, map[string]any{"key": "k"}, nil), desktop.ErrInvalidArgs)
	assert.ErrorIs(t, inv.Invoke(ctx, desktop.CmdGetSetting, map[string]any{"key": 3}, nil), desktop.ErrInvalidArgs)
}

func TestAppInfoFallsBackOnBridgeFailure(t *testing.T) {
	inv := &mockInvoker{}
	inv.On("Invoke", desktop.CmdGetVersion, mock.Anything, mock.Anything).Return(errors.New("bridge down"))

	info := desktop.AppInfo(context.Background(), desktop.NewNative(inv), nil)
	assert.Equal(t, desktop.Info{Version: "1.0.0", Platform: "web"}, info)
	inv.AssertExpectations(t)
}

func TestDialogsUsePrompter(t *testing.T) {
	ctx := context.Background()
	p := &mockPrompter{}
	p.On("Message", "Fout", "Kon niet opslaan", desktop.MessageError).Return(nil)
	p.On("PickPath", "Bestand opslaan", "rapport.pdf").Return("/tmp/rapport.pdf", true, nil)
	n := desktop.NewNative(desktop.NewLocalInvoker("1.0.0"), desktop.WithPrompter(p))

	require.NoError(t, desktop.ShowError(ctx, n, "Fout", "Kon niet opslaan"))
	path, ok, err := n.SaveFile(ctx, "rapport.pdf", []desktop.FileFilter{{Name: "PDF", Extensions: []string{"pdf"}}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/tmp/rapport.pdf", path)
	p.AssertExpectations(t)
}

func TestTerminalPrompter(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	yes := desktop.NewTerminalPrompter(strings.NewReader("Ja\n"), &out)
	ok, err := yes.Confirm(ctx, "Update Beschikbaar", "Nu updaten?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "[j/N]")

	no := desktop.NewTerminalPrompter(strings.NewReader("\n"), &out)
	ok, err = no.Confirm(ctx, "t", "m")
	require.NoError(t, err)
	assert.False(t, ok)

	eof := desktop.NewTerminalPrompter(strings.NewReader(""), &out)
	path, picked, err := eof.PickPath(ctx, "Opslaan", "export.csv", nil)
	require.NoError(t, err)
	assert.True(t, picked)
	assert.Equal(t, "export.csv", path)
}

func manifestServer(t *testing.T, version string, payload []byte, checksum string) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"version": version,
			"notes":   "Nieuwe scouting rapporten",
			"url":     srv.URL + "/download",
			"sha256":  checksum,
		})
	})
	mux.HandleFunc("/download", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestManifestUpdater(t *testing.T) {
	ctx := context.Background()
	payload := []byte("#!/bin/sh\necho proinvestix\n")
	sum := sha256.Sum256(payload)
	checksum := hex.EncodeToString(sum[:])

	t.Run("newer version installs", func(t *testing.T) {
		srv := manifestServer(t, "1.2.0", payload, checksum)
		dir := t.TempDir()
		u, err := desktop.NewManifestUpdater(srv.URL+"/manifest.json", "1.0.0", dir).Check(ctx)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "1.2.0", u.Version)
		assert.Equal(t, "Nieuwe scouting rapporten", u.Notes)

		require.NoError(t, u.Install(ctx))
		assert.Equal(t, filepath.Join(dir, "proinvestix-1.2.0"), u.Path)
		data, err := os.ReadFile(u.Path)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("same version is up to date", func(t *testing.T) {
		srv := manifestServer(t, "v1.0.0", payload, checksum)
		u, err := desktop.NewManifestUpdater(srv.URL+"/manifest.json", "1.0.0", t.TempDir()).Check(ctx)
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		srv := manifestServer(t, "2.0.0", payload, strings.Repeat("0", 64))
		u, err := desktop.NewManifestUpdater(srv.URL+"/manifest.json", "1.0.0", t.TempDir()).Check(ctx)
		require.NoError(t, err)
		assert.ErrorIs(t, u.Install(ctx), desktop.ErrChecksumMismatch)
	})

	t.Run("missing checksum", func(t *testing.T) {
		srv := manifestServer(t, "2.0.0", payload, "")
		u, err := desktop.NewManifestUpdater(srv.URL+"/manifest.json", "1.0.0", t.TempDir()).Check(ctx)
		require.NoError(t, err)
		assert.ErrorIs(t, u.Install(ctx), desktop.ErrMissingChecksum)
	})

	t.Run("invalid version", func(t *testing.T) {
		srv := manifestServer(t, "latest", payload, checksum)
		_, err := desktop.NewManifestUpdater(srv.URL+"/manifest.json", "1.0.0", t.TempDir()).Check(ctx)
		assert.ErrorIs(t, err, desktop.ErrInvalidVersion)
	})

	t.Run("manifest unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()
		_, err := desktop.NewManifestUpdater(srv.URL, "1.0.0", t.TempDir()).Check(ctx)
		assert.ErrorIs(t, err, desktop.ErrManifest)
	})
}

func installable(version, path string, installErr error) *desktop.Update {
	return desktop.NewUpdate(version, "Fixes", func(context.Context, *desktop.Update) (string, error) {
		return path, installErr
	})
}

func TestUpdateWatcher(t *testing.T) {
	ctx := context.Background()
	prompt := desktop.UpdatePrompt("2.0.0", "Fixes")
	assert.Equal(t, "Versie 2.0.0 is beschikbaar. Wil je nu updaten?\n\nFixes", prompt)

	t.Run("skips outside the desktop shell", func(t *testing.T) {
		w := desktop.NewUpdateWatcher(desktop.Noop{})
		assert.Equal(t, desktop.OutcomeSkipped, w.Run(ctx))
	})

	t.Run("cancellation aborts the wait", func(t *testing.T) {
		up := &mockUpdater{}
		w := desktop.NewUpdateWatcher(desktop.NewNative(desktop.NewLocalInvoker("1.0.0"), desktop.WithUpdater(up)),
			desktop.WithDelay(time.Hour))
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		assert.Equal(t, desktop.OutcomeCanceled, w.Run(canceled))
		up.AssertNotCalled(t, "Check")
	})

	t.Run("up to date", func(t *testing.T) {
		up := &mockUpdater{}
		up.On("Check").Return((*desktop.Update)(nil), nil).Once()
		p := &mockPrompter{}
		w := desktop.NewUpdateWatcher(desktop.NewNative(desktop.NewLocalInvoker("1.0.0"),
			desktop.WithUpdater(up), desktop.WithPrompter(p)), desktop.WithDelay(0))
		assert.Equal(t, desktop.OutcomeUpToDate, w.Run(ctx))
		p.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})

	t.Run("check errors are swallowed", func(t *testing.T) {
		up := &mockUpdater{}
		up.On("Check").Return((*desktop.Update)(nil), errors.New("offline")).Once()
		w := desktop.NewUpdateWatcher(desktop.NewNative(desktop.NewLocalInvoker("1.0.0"), desktop.WithUpdater(up)),
			desktop.WithDelay(0))
		assert.Equal(t, desktop.OutcomeUpToDate, w.Run(ctx))
	})

	t.Run("accepted update installs and relaunches", func(t *testing.T) {
		up := &mockUpdater{}
		up.On("Check").Return(installable("2.0.0", "/opt/proinvestix-2.0.0", nil), nil).Twice()
		p := &mockPrompter{}
		p.On("Confirm", desktop.UpdateTitle, prompt).Return(true, nil).Once()
		r := &mockRelauncher{}
		r.On("Relaunch", "/opt/proinvestix-2.0.0").Return(nil).Once()

		shell := desktop.NewNative(desktop.NewLocalInvoker("1.0.0"),
			desktop.WithUpdater(up), desktop.WithPrompter(p), desktop.WithRelauncher(r))
		w := desktop.NewUpdateWatcher(shell, desktop.WithDelay(time.Millisecond))

		assert.Equal(t, desktop.OutcomeInstalled, w.Run(ctx))
		up.AssertExpectations(t)
		p.AssertExpectations(t)
		r.AssertExpectations(t)
	})

	t.Run("declined update is not installed", func(t *testing.T) {
		up := &mockUpdater{}
		up.On("Check").Return(installable("2.0.0", "/opt/p", nil), nil).Once()
		p := &mockPrompter{}
		p.On("Confirm", desktop.UpdateTitle, prompt).Return(false, nil).Once()
		r := &mockRelauncher{}

		shell := desktop.NewNative(desktop.NewLocalInvoker("1.0.0"),
			desktop.WithUpdater(up), desktop.WithPrompter(p), desktop.WithRelauncher(r))
		assert.Equal(t, desktop.OutcomeDeclined, desktop.NewUpdateWatcher(shell, desktop.WithDelay(0)).Run(ctx))
		r.AssertNotCalled(t, "Relaunch", mock.Anything)
		up.AssertNumberOfCalls(t, "Check", 1)
	})

	t.Run("update withdrawn between check and install", func(t *testing.T) {
		up := &mockUpdater{}
		up.On("Check").Return(installable("2.0.0", "/opt/p", nil), nil).Once()
		up.On("Check").Return((*desktop.Update)(nil), nil).Once()
		p := &mockPrompter{}
		p.On("Confirm", desktop.UpdateTitle, prompt).Return(true, nil).Once()
		r := &mockRelauncher{}

		shell := desktop.NewNative(desktop.NewLocalInvoker("1.0.0"),
			desktop.WithUpdater(up), desktop.WithPrompter(p), desktop.WithRelauncher(r))
		assert.Equal(t, desktop.OutcomeUpToDate, desktop.NewUpdateWatcher(shell, desktop.WithDelay(0)).Run(ctx))
		up.AssertNumberOfCalls(t, "Check", 2)
		r.AssertNotCalled(t, "Relaunch", mock.Anything)
	})

	t.Run("install without an updater reports no update", func(t *testing.T) {
		shell := desktop.NewNative(desktop.NewLocalInvoker("1.0.0"))
		assert.ErrorIs(t, shell.InstallUpdate(ctx), desktop.ErrNoUpdate)
	})

	t.Run("install failure is swallowed", func(t *testing.T) {
		up := &mockUpdater{}
		up.On("Check").Return(installable("2.0.0", "", errors.New("disk full")), nil)
		p := &mockPrompter{}
		p.On("Confirm", desktop.UpdateTitle, prompt).Return(true, nil)
		r := &mockRelauncher{}

		shell := desktop.NewNative(desktop.NewLocalInvoker("1.0.0"),
			desktop.WithUpdater(up), desktop.WithPrompter(p), desktop.WithRelauncher(r))
		assert.Equal(t, desktop.OutcomeFailed, desktop.NewUpdateWatcher(shell, desktop.WithDelay(0)).Run(ctx))
		r.AssertNotCalled(t, "Relaunch", mock.Anything)
	})
}
