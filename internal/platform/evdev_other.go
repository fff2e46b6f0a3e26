//go:build !linux

package platform

import "errors"

// EvdevInput is only available on Linux.
type EvdevInput struct{}

func OpenEvdev(path string) (*EvdevInput, error) {
	return nil, errors.New("evdev: not supported on this platform")
}

func (e *EvdevInput) WaitInput() (Key, error) { return 0, ErrInputClosed }

func (e *EvdevInput) Close() error { return nil }
