package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal prompts on out and reads a password from in. Echo is disabled when
// in is a terminal; otherwise a single line is read, which lets scripts pipe a
// password in.
//
// A Terminal is not safe for concurrent use. A read abandoned by a cancelled
// context stays outstanding and answers the next prompt, so in is never read
// by two goroutines at once.
type Terminal struct {
	In    *os.File
	Out   io.Writer
	Label string

	// Confirm asks twice and fails with ErrMismatch if the answers differ.
	Confirm bool

	lines   *bufio.Reader
	pending chan answer
	saved   *term.State
}

// Password implements Source.
func (t *Terminal) Password(ctx context.Context) (string, error) {
	pw, err := t.ask(ctx, t.label())
	if err != nil || !t.Confirm {
		return pw, err
	}
	again, err := t.ask(ctx, "Repeat "+strings.ToLower(t.label()))
	if err != nil {
		return "", err
	}
	if again != pw {
		return "", ErrMismatch
	}
	return pw, nil
}

func (t *Terminal) label() string {
	if t.Label == "" {
		return "Password"
	}
	return t.Label
}

type answer struct {
	pw  string
	err error
}

func (t *Terminal) ask(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(t.Out, "%s: ", label)

	if t.pending == nil {
		fd := int(t.In.Fd())
		if term.IsTerminal(fd) {
			// Kept so a cancelled prompt can turn echo back on while
			// ReadPassword is still blocked.
			t.saved, _ = term.GetState(fd)
		}
		done := make(chan answer, 1)
		go func() {
			pw, err := t.read(fd)
			done <- answer{pw, err}
		}()
		t.pending = done
	}

	select {
	case <-ctx.Done():
		t.restore()
		fmt.Fprintln(t.Out)
		return "", fmt.Errorf("%w: %v", ErrAborted, ctx.Err())
	case a := <-t.pending:
		t.pending, t.saved = nil, nil
		if errors.Is(a.err, io.EOF) {
			return "", ErrAborted
		}
		return a.pw, a.err
	}
}

func (t *Terminal) restore() {
	if t.saved != nil {
		_ = term.Restore(int(t.In.Fd()), t.saved)
	}
}

func (t *Terminal) read(fd int) (string, error) {
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(t.Out)
		return string(b), err
	}
	if t.lines == nil {
		t.lines = bufio.NewReader(t.In)
	}
	line, err := t.lines.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var _ Source = (*Terminal)(nil)
