// Package backup copies save files aside before they are overwritten.
package backup

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tinytelemetry/tradeadvance/internal/platform"
)

const (
	defaultKeepLast = 10
	stampLayout     = "20060102-150405.000"
)

// Manager writes timestamped copies of save files and prunes old ones.
type Manager struct {
	fs  platform.FS
	cfg Config
	now func() time.Time
	log *slog.Logger
}

// NewManager initializes the backup manager. It returns nil when backups
// are disabled.
func NewManager(fs platform.FS, cfg Config, log *slog.Logger) (*Manager, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if fs == nil {
		return nil, fmt.Errorf("backup: nil filesystem")
	}
	if strings.TrimSpace(cfg.Dir) == "" {
		return nil, fmt.Errorf("backup: dir is required when backup is enabled")
	}
	if cfg.KeepLast <= 0 {
		cfg.KeepLast = defaultKeepLast
	}
	if err := fs.MkdirAll(cfg.Dir); err != nil {
		return nil, fmt.Errorf("backup: create dir: %w", err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Manager{fs: fs, cfg: cfg, now: time.Now, log: log}, nil
}

// Snapshot copies src into the backup dir as <stem>-<UTC time><ext> and
// prunes older copies of the same save. It returns the copy's path.
func (m *Manager) Snapshot(src string) (string, error) {
	data, err := m.fs.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("backup: read: %w", err)
	}

	ext := filepath.Ext(src)
	stem := platform.Stem(src, ext)
	dst := filepath.Join(m.cfg.Dir, fmt.Sprintf("%s-%s%s", stem, m.now().UTC().Format(stampLayout), ext))
	if err := m.fs.WriteFile(dst, data); err != nil {
		return "", fmt.Errorf("backup: write: %w", err)
	}
	m.log.Info("backup created", "src", src, "dst", dst)

	if err := m.prune(stem, ext); err != nil {
		return dst, fmt.Errorf("backup: prune: %w", err)
	}
	return dst, nil
}

// List returns the copies of stem, newest first.
func (m *Manager) List(stem, ext string) ([]string, error) {
	names, err := m.fs.ReadDir(m.cfg.Dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, name := range names {
		if isCopyOf(name, stem, ext) {
			out = append(out, filepath.Join(m.cfg.Dir, name))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		// timestamp is embedded in the name and lexical order matches chronology
		return out[i] > out[j]
	})
	return out, nil
}

func (m *Manager) prune(stem, ext string) error {
	copies, err := m.List(stem, ext)
	if err != nil {
		return err
	}
	if len(copies) <= m.cfg.KeepLast {
		return nil
	}
	for _, old := range copies[m.cfg.KeepLast:] {
		if err := m.fs.Remove(old); err != nil {
			return err
		}
		m.log.Debug("backup pruned", "path", old)
	}
	return nil
}

func isCopyOf(name, stem, ext string) bool {
	rest, ok := strings.CutPrefix(name, stem+"-")
	if !ok {
		return false
	}
	stamp, ok := strings.CutSuffix(rest, ext)
	if !ok {
		return false
	}
	_, err := time.Parse(stampLayout, stamp)
	return err == nil
}
