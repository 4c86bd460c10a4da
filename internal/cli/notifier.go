package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/Veraticus/ascend/internal/model"
)

// Notifier prints unlock banners to a terminal.
type Notifier struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewNotifier creates a notifier writing to w, or stdout when w is nil.
func NewNotifier(w io.Writer) *Notifier {
	if w == nil {
		w = os.Stdout
	}
	return &Notifier{writer: w}
}

// Notify prints the unlock banner for event.
func (n *Notifier) Notify(_ context.Context, event model.UnlockEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintln(n.writer, RenderUnlock(event)); err != nil {
		slog.Warn("Failed to print unlock notification", "error", err, "unlock", event.ID)
	}
}
