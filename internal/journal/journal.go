// Package journal keeps an append-only history of completed trades.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	defaultFileMode = 0644
	defaultDirMode  = 0755
)

// Trade describes one completed swap. Index 0 is the first save found,
// index 1 the second; Species[i] is what save i gave away.
type Trade struct {
	Time     time.Time `json:"time"`
	Saves    [2]string `json:"saves"`
	Trainers [2]string `json:"trainers"`
	Species  [2]string `json:"species"`
}

type entry struct {
	Seq   uint64 `json:"seq"`
	Trade Trade  `json:"trade"`
}

// Journal stores one JSON entry per line.
type Journal struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	nextSeq uint64
}

// Open creates or opens a journal at path. A partially written trailing
// line is cut off.
func Open(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("journal: path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return nil, fmt.Errorf("journal: mkdir: %w", err)
	}

	maxSeq, good, err := scan(path, nil)
	if err != nil {
		return nil, err
	}
	if err := truncateTail(path, good); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	return &Journal{path: path, file: f, nextSeq: maxSeq + 1}, nil
}

// Append persists one trade and returns its sequence number.
func (j *Journal) Append(t Trade) (uint64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return 0, errors.New("journal: closed")
	}

	seq := j.nextSeq
	line, err := json.Marshal(entry{Seq: seq, Trade: t})
	if err != nil {
		return 0, fmt.Errorf("journal: marshal entry: %w", err)
	}
	line = append(line, '\n')

	if _, err := j.file.Write(line); err != nil {
		return 0, fmt.Errorf("journal: write entry: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return 0, fmt.Errorf("journal: sync entry: %w", err)
	}
	j.nextSeq++
	return seq, nil
}

// Replay calls fn for each entry in file order.
func (j *Journal) Replay(fn func(seq uint64, t Trade) error) error {
	if fn == nil {
		return errors.New("journal: replay callback is nil")
	}
	j.mu.Lock()
	path := j.path
	j.mu.Unlock()

	_, _, err := scan(path, fn)
	return err
}

// Close closes the underlying journal file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}

// scan walks the complete entries of path, calling fn for each when set.
// It returns the highest sequence seen and the byte length of the valid
// prefix.
func scan(path string, fn func(uint64, Trade) error) (uint64, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("journal: open for read: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	var maxSeq uint64
	var good int64
	for {
		line, rerr := reader.ReadBytes('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return 0, 0, fmt.Errorf("journal: read: %w", rerr)
		}
		if len(line) == 0 || line[len(line)-1] != '\n' {
			// End of file or a torn trailing write.
			return maxSeq, good, nil
		}

		var e entry
		if uerr := json.Unmarshal(line, &e); uerr != nil {
			// Stop at the first malformed line.
			return maxSeq, good, nil
		}
		good += int64(len(line))
		maxSeq = max(maxSeq, e.Seq)
		if fn != nil {
			if ferr := fn(e.Seq, e.Trade); ferr != nil {
				return 0, 0, ferr
			}
		}
		if errors.Is(rerr, io.EOF) {
			return maxSeq, good, nil
		}
	}
}

func truncateTail(path string, size int64) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("journal: stat: %w", err)
	}
	if info.Size() == size {
		return nil
	}
	if err := os.Truncate(path, size); err != nil {
		return fmt.Errorf("journal: truncate torn tail: %w", err)
	}
	return nil
}
