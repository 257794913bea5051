// Package clipboard places text on the system clipboard and clears it again
// after a delay.
package clipboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility is available.
var ErrUnavailable = errors.New("clipboard unavailable")

// Sink accepts text for the clipboard and can report what it currently holds.
type Sink interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// System is the desktop clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

func (System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// Memory is an in-process Sink.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// ClearAfter waits for d, or until ctx is done, and then empties the sink if
// it still holds text. Content copied by someone else in the meantime is left
// alone. It reports whether the sink was cleared.
func ClearAfter(ctx context.Context, sink Sink, text string, d time.Duration) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	current, err := sink.ReadAll()
	if err != nil {
		return false, err
	}
	if current != text {
		return false, nil
	}
	if err := sink.WriteAll(""); err != nil {
		return false, err
	}
	return true, nil
}
