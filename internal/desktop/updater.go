package desktop

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/okian/proinvestix/pkg/logger"
)

const defaultUpdateTimeout = 5 * time.Minute

// Update is a newer release that can be installed.
type Update struct {
	Version string `json:"version"`
	Notes   string `json:"notes"`
	URL     string `json:"url"`
	SHA256  string `json:"sha256"`

	// Path is where Install placed the new binary.
	Path string `json:"-"`

	install InstallFunc
}

// InstallFunc fetches u and returns the installed binary path.
type InstallFunc func(ctx context.Context, u *Update) (string, error)

// NewUpdate describes a release installed by install.
func NewUpdate(version, notes string, install InstallFunc) *Update {
	return &Update{Version: version, Notes: notes, install: install}
}

// Install downloads the release and verifies it.
func (u *Update) Install(ctx context.Context) error {
	if u.install == nil {
		return fmt.Errorf("%w: update has no source", ErrManifest)
	}
	path, err := u.install(ctx, u)
	if err != nil {
		return err
	}
	u.Path = path
	return nil
}

// Updater finds newer releases. Check returns nil when up to date.
type Updater interface {
	Check(ctx context.Context) (*Update, error)
}

// ManifestUpdater reads a JSON manifest {"version","notes","url","sha256"}.
type ManifestUpdater struct {
	manifestURL string
	current     string
	dir         string
	http        *http.Client
	logger      logger.Logger
}

// UpdaterOption applies a configuration option to the ManifestUpdater.
type UpdaterOption func(*ManifestUpdater)

// WithUpdaterHTTPClient sets the HTTP client.
func WithUpdaterHTTPClient(hc *http.Client) UpdaterOption {
	return func(m *ManifestUpdater) {
		if hc != nil {
			m.http = hc
		}
	}
}

// WithUpdaterLogger sets the logger.
func WithUpdaterLogger(l logger.Logger) UpdaterOption {
	return func(m *ManifestUpdater) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManifestUpdater checks manifestURL against currentVersion and installs
// downloads into dir.
func NewManifestUpdater(manifestURL, currentVersion, dir string, opts ...UpdaterOption) *ManifestUpdater {
	m := &ManifestUpdater{
		manifestURL: manifestURL,
		current:     currentVersion,
		dir:         dir,
		http:        &http.Client{Timeout: defaultUpdateTimeout},
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Check implements Updater.
func (m *ManifestUpdater) Check(ctx context.Context) (*Update, error) {
	current, err := canonical(m.current)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	resp, err := m.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrManifest, resp.StatusCode)
	}

	var u Update
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	latest, err := canonical(u.Version)
	if err != nil {
		return nil, err
	}
	if semver.Compare(latest, current) <= 0 {
		m.logger.Debug(ctx, "up to date", logger.String("version", m.current))
		return nil, nil
	}
	u.install = m.download
	return &u, nil
}

func (m *ManifestUpdater) download(ctx context.Context, u *Update) (string, error) {
	want := strings.ToLower(strings.TrimSpace(u.SHA256))
	if want == "" {
		return "", ErrMissingChecksum
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	resp, err := m.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("create update dir: %w", err)
	}
	tmp, err := os.CreateTemp(m.dir, ".update-*")
	if err != nil {
		return "", fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, hash), resp.Body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp: %w", err)
	}
	if got := hex.EncodeToString(hash.Sum(nil)); got != want {
		return "", fmt.Errorf("%w: got %s want %s", ErrChecksumMismatch, got, want)
	}

	target := filepath.Join(m.dir, "proinvestix-"+strings.TrimPrefix(u.Version, "v"))
	if err := os.Chmod(tmp.Name(), 0o755); err != nil {
		return "", fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("install: %w", err)
	}
	m.logger.Info(ctx, "update downloaded", logger.String("version", u.Version), logger.String("path", target))
	return target, nil
}

// canonical turns "1.2.3" into the "v1.2.3" form semver expects.
func canonical(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return semver.Canonical(v), nil
}

// Relauncher restarts the application from an installed binary.
type Relauncher interface {
	Relaunch(ctx context.Context, path string) error
}

// ExecRelauncher starts path with the current arguments, then exits.
type ExecRelauncher struct {
	Exit func(code int)
}

func (r ExecRelauncher) Relaunch(ctx context.Context, path string) error {
	cmd := exec.CommandContext(context.WithoutCancel(ctx), path, os.Args[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("relaunch: %w", err)
	}
	exit := r.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(0)
	return nil
}
