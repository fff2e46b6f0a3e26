package savedata

import (
	"path/filepath"
	"strings"

	"github.com/tinytelemetry/tradeadvance/internal/apperr"
	"github.com/tinytelemetry/tradeadvance/internal/platform"
)

// Store finds and persists saves in one directory. Saves are addressed by
// stem: the file name without the extension.
type Store struct {
	FS    platform.FS
	Codec Codec
	Dir   string
	Ext   string
}

// FindPair returns the stems of the first two save files in name order.
func (s *Store) FindPair() (string, string, error) {
	names, err := s.FS.ReadDir(s.Dir)
	if err != nil {
		return "", "", &apperr.FSError{Op: "list", Path: s.Dir, Err: err}
	}
	var stems []string
	for _, name := range names {
		if !strings.HasSuffix(name, s.Ext) || name == s.Ext {
			continue
		}
		stems = append(stems, platform.Stem(name, s.Ext))
		if len(stems) == 2 {
			return stems[0], stems[1], nil
		}
	}
	return "", "", &apperr.MissingFilesError{Dir: s.Dir, Ext: s.Ext, Found: len(stems)}
}

// Path returns the file path of stem.
func (s *Store) Path(stem string) string {
	return filepath.Join(s.Dir, stem+s.Ext)
}

func (s *Store) Load(stem string) (Save, error) {
	path := s.Path(stem)
	data, err := s.FS.ReadFile(path)
	if err != nil {
		return nil, &apperr.FSError{Op: "read", Path: path, Err: err}
	}
	save, err := s.Codec.Decode(data)
	if err != nil {
		return nil, &apperr.SaveError{Op: "decode", Name: stem, Err: err}
	}
	return save, nil
}

// Encode serialises save, tagging failures with stem.
func (s *Store) Encode(stem string, save Save) ([]byte, error) {
	data, err := save.Encode()
	if err != nil {
		return nil, &apperr.SaveError{Op: "encode", Name: stem, Err: err}
	}
	return data, nil
}

func (s *Store) Write(stem string, data []byte) error {
	path := s.Path(stem)
	if err := s.FS.WriteFile(path, data); err != nil {
		return &apperr.FSError{Op: "write", Path: path, Err: err}
	}
	return nil
}
