package config

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// diagnostics is the append-only warning sink. Messages are keyed by their
// formatted text: the first occurrence is logged and recorded, repeats are
// dropped.
type diagnostics struct {
	logger *zap.Logger

	mu       sync.Mutex
	seen     map[string]struct{}
	messages []string
}

func newDiagnostics(logger *zap.Logger) *diagnostics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &diagnostics{
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

func (d *diagnostics) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	d.mu.Lock()
	if _, dup := d.seen[msg]; dup {
		d.mu.Unlock()
		return
	}
	d.seen[msg] = struct{}{}
	d.messages = append(d.messages, msg)
	d.mu.Unlock()

	d.logger.Warn(msg)
}

// Messages returns a copy of every recorded warning, in first-seen order.
func (d *diagnostics) Messages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.messages...)
}
