package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/browser"
)

// Handler receives each alive URL exactly once.
type Handler interface {
	Handle(url string) error
}

// Print writes one URL per line to a writer, serializing concurrent calls.
type Print struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrint creates a line-per-URL handler. Pass os.Stdout for normal use.
func NewPrint(w io.Writer) *Print {
	return &Print{w: w}
}

func (p *Print) Handle(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := fmt.Fprintln(p.w, url); err != nil {
		return fmt.Errorf("failed to write URL: %w", err)
	}
	return nil
}

// File appends URLs to an output file, one per line.
type File struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// NewFile creates a file-backed handler.
func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return &File{f: f, w: bufio.NewWriter(f)}, nil
}

func (h *File) Handle(url string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.WriteString(url + "\n"); err != nil {
		return fmt.Errorf("failed to write to output file: %w", err)
	}
	return nil
}

// Close flushes buffered lines and closes the file.
func (h *File) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return h.f.Close()
}

// Browser opens each URL in the default browser.
type Browser struct{}

func (Browser) Handle(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Tee fans a URL out to multiple handlers.
type Tee []Handler

func (t Tee) Handle(url string) error {
	for _, h := range t {
		if err := h.Handle(url); err != nil {
			return err
		}
	}
	return nil
}
