package desktop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter asks the user something.
type Prompter interface {
	Message(ctx context.Context, title, message string, kind MessageKind) error
	Confirm(ctx context.Context, title, message string) (bool, error)
	// PickPath asks for a file path; ok is false when the user cancels.
	PickPath(ctx context.Context, title, defaultPath string, filters []FileFilter) (path string, ok bool, err error)
}

// TerminalPrompter prompts on a line-oriented terminal.
type TerminalPrompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter reads answers from in and writes prompts to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

func (t *TerminalPrompter) Message(_ context.Context, title, message string, kind MessageKind) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintf(t.out, "[%s] %s\n%s\n", strings.ToUpper(string(kind)), title, message)
	return err
}

func (t *TerminalPrompter) Confirm(_ context.Context, title, message string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := fmt.Fprintf(t.out, "%s\n%s\n[j/N]: ", title, message); err != nil {
		return false, err
	}
	line, err := t.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "j", "ja", "y", "yes":
		return true, nil
	}
	return false, nil
}

func (t *TerminalPrompter) PickPath(_ context.Context, title, defaultPath string, filters []FileFilter) (string, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	prompt := title
	if exts := extensions(filters); exts != "" {
		prompt += " (" + exts + ")"
	}
	if defaultPath != "" {
		prompt += " [" + defaultPath + "]"
	}
	if _, err := fmt.Fprintf(t.out, "%s: ", prompt); err != nil {
		return "", false, err
	}
	line, err := t.readLine()
	if err != nil {
		return "", false, err
	}
	if line == "" {
		line = defaultPath
	}
	return line, line != "", nil
}

// readLine returns one trimmed line; EOF counts as an empty answer.
func (t *TerminalPrompter) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func extensions(filters []FileFilter) string {
	var parts []string
	for _, f := range filters {
		for _, ext := range f.Extensions {
			parts = append(parts, "*."+ext)
		}
	}
	return strings.Join(parts, ", ")
}

// AutoPrompter answers every confirmation with Accept and never picks a path.
type AutoPrompter struct {
	Accept bool
	Out    io.Writer
}

func (a AutoPrompter) Message(_ context.Context, title, message string, kind MessageKind) error {
	if a.Out == nil {
		return nil
	}
	_, err := fmt.Fprintf(a.Out, "[%s] %s: %s\n", strings.ToUpper(string(kind)), title, message)
	return err
}

func (a AutoPrompter) Confirm(context.Context, string, string) (bool, error) {
	return a.Accept, nil
}

func (a AutoPrompter) PickPath(_ context.Context, _, defaultPath string, _ []FileFilter) (string, bool, error) {
	return defaultPath, defaultPath != "", nil
}
