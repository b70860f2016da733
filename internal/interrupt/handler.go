// Package interrupt turns Ctrl+C into a two-step stop for long-running
// commands: the first signal cancels in-flight API calls so the command can
// report what it already fetched, a second one within Window exits at once.
package interrupt

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
)

// ExitInterrupt is the exit code for interrupt (130 = 128 + SIGINT).
const ExitInterrupt = 130

// Window is the time within which a second Ctrl+C aborts.
const Window = 2 * time.Second

// abortMessage is displayed when the user aborts via double Ctrl+C.
const abortMessage = "\nAborted."

// Handler manages graceful interrupt handling with double Ctrl+C detection.
type Handler struct {
	mu          sync.Mutex
	first       time.Time
	interrupted bool
	aborted     bool
	stopped     bool
	cancel      context.CancelFunc
	done        chan struct{}

	exit   func(int)
	clock  clockwork.Clock
	stderr io.Writer
}

// Options holds injectable dependencies for testing.
type Options struct {
	SigCh <-chan os.Signal
	Exit  func(int)
	Clock clockwork.Clock
	// Stderr must be safe for concurrent writes.
	Stderr io.Writer
}

// NewHandler creates a handler that listens for SIGINT/SIGTERM.
// Returns the handler and a context that is canceled on first interrupt.
func NewHandler(parent context.Context) (*Handler, context.Context) {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return NewHandlerWithOptions(parent, Options{SigCh: sigCh})
}

// NewHandlerWithOptions creates a handler with injectable dependencies.
func NewHandlerWithOptions(parent context.Context, opts Options) (*Handler, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	h := &Handler{
		cancel: cancel,
		done:   make(chan struct{}),
		exit:   opts.Exit,
		clock:  opts.Clock,
		stderr: opts.Stderr,
	}
	if h.exit == nil {
		h.exit = os.Exit
	}
	if h.clock == nil {
		h.clock = clockwork.NewRealClock()
	}
	if h.stderr == nil {
		h.stderr = os.Stderr
	}

	if opts.SigCh != nil {
		go h.listen(opts.SigCh)
	}

	return h, ctx
}

func (h *Handler) listen(sigCh <-chan os.Signal) {
	for {
		select {
		case <-h.done:
			return
		case _, ok := <-sigCh:
			if !ok {
				return
			}
			if h.handle() {
				return
			}
		}
	}
}

// handle records one signal and reports whether listening should end.
func (h *Handler) handle() bool {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return true
	}
	now := h.clock.Now()

	if !h.interrupted {
		h.interrupted = true
		h.first = now
		h.mu.Unlock()
		h.cancel()
		return false
	}

	if now.Sub(h.first) > Window {
		h.mu.Unlock()
		return false
	}

	h.aborted = true
	h.mu.Unlock()
	_, _ = fmt.Fprintln(h.stderr, abortMessage)
	h.exit(ExitInterrupt)
	return true
}

// WasInterrupted reports whether at least one interrupt was received.
func (h *Handler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}

// WasAborted reports whether a second interrupt arrived within Window.
func (h *Handler) WasAborted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.aborted
}

// Stop releases the handler. Safe to call more than once.
func (h *Handler) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	h.mu.Unlock()

	signal.Reset(syscall.SIGINT, syscall.SIGTERM)
	close(h.done)
	h.cancel()
}
