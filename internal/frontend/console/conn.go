// Package console is the line-based terminal frontend: it reads commands from
// an input stream, dispatches them to the game session, and renders the
// results with lipgloss styles.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Conn is a line-oriented terminal connection. Input is read by a background
// goroutine so a blocked read can be abandoned through the context.
type Conn struct {
	lines <-chan string
	// readErr is set before lines is closed.
	readErr error

	done      chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	out io.Writer
}

// NewConn starts reading lines from in and writes output to out.
//
// Precondition: in and out must be non-nil.
// Postcondition: the reader goroutine exits when in reaches EOF or fails, or
// after Close once its pending read returns.
func NewConn(in io.Reader, out io.Writer) *Conn {
	lines := make(chan string)
	c := &Conn{lines: lines, done: make(chan struct{}), out: out}
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case <-c.done:
				return
			default:
			}
			select {
			case lines <- strings.TrimRight(sc.Text(), "\r"):
			case <-c.done:
				return
			}
		}
		c.readErr = sc.Err()
	}()
	return c
}

// Close stops delivering input. Lines read afterwards are discarded and
// ReadLine returns io.ErrClosedPipe. Calling Close more than once is safe.
func (c *Conn) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// ReadLine returns the next input line without its line ending.
//
// Postcondition: Returns io.EOF once input is exhausted, ctx.Err() when ctx
// ends first, or the underlying read error.
func (c *Conn) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-c.done:
		return "", io.ErrClosedPipe
	default:
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", io.ErrClosedPipe
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", fmt.Errorf("reading input: %w", c.readErr)
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// WriteLine writes text followed by a newline.
func (c *Conn) WriteLine(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, "%s\n", text)
	return err
}

// WritePrompt writes prompt without a trailing newline.
func (c *Conn) WritePrompt(prompt string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprint(c.out, prompt)
	return err
}

// Prompt writes prompt and reads the reply, trimmed of surrounding space.
func (c *Conn) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := c.WritePrompt(prompt); err != nil {
		return "", err
	}
	line, err := c.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
