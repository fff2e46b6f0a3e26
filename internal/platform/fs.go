package platform

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FS is the slice of filesystem access the save loader needs.
type FS interface {
	// ReadDir returns the names of regular files in dir, sorted.
	ReadDir(dir string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces path atomically.
	WriteFile(path string, data []byte) error
	Remove(path string) error
	MkdirAll(dir string) error
}

// OSFS is FS over the local filesystem.
type OSFS struct{}

var _ FS = OSFS{}

func (OSFS) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// WriteFile writes to a temp file in the same directory, syncs it and
// renames it over path.
func (OSFS) WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func (OSFS) Remove(path string) error { return os.Remove(path) }
func (OSFS) MkdirAll(dir string) error { return os.MkdirAll(dir, 0755) }

// Stem strips ext from the base name of path.
func Stem(path, ext string) string {
	return strings.TrimSuffix(filepath.Base(path), ext)
}

// MemFS is an in-memory FS keyed by full path.
type MemFS struct {
	Files map[string][]byte
	// WriteErr, when set, fails every WriteFile.
	WriteErr error
}

var _ FS = (*MemFS)(nil)

func NewMemFS() *MemFS {
	return &MemFS{Files: make(map[string][]byte)}
}

func (m *MemFS) ReadDir(dir string) ([]string, error) {
	var names []string
	for path := range m.Files {
		if filepath.Dir(path) == filepath.Clean(dir) {
			names = append(names, filepath.Base(path))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.Files[filepath.Clean(path)]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MemFS) WriteFile(path string, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[filepath.Clean(path)] = append([]byte(nil), data...)
	return nil
}

func (m *MemFS) Remove(path string) error {
	path = filepath.Clean(path)
	if _, ok := m.Files[path]; !ok {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}
	delete(m.Files, path)
	return nil
}

// MkdirAll is a no-op: directories exist implicitly.
func (m *MemFS) MkdirAll(string) error { return nil }
