package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"dupe/internal/dupe"
)

// Console is a line-oriented dupe.Prompter over a reader and a writer.
// When input is not a terminal each answer is echoed after its question so
// that a transcript of a scripted run stays readable.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	echo bool
}

// NewConsole creates a Console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	echo := false
	if f, ok := in.(*os.File); ok {
		echo = !term.IsTerminal(int(f.Fd()))
	}
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		echo: echo,
	}
}

// NewStdConsole creates a Console on stdin and stdout.
func NewStdConsole() *Console {
	return NewConsole(os.Stdin, os.Stdout)
}

// Ask writes question and reads one line. A final line without a newline is
// still returned; io.EOF is returned only when no input is left.
func (c *Console) Ask(question string) (string, error) {
	fmt.Fprintln(c.out, question)

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimRight(line, "\r\n")
	if c.echo {
		fmt.Fprintln(c.out, line)
	}
	return line, nil
}

// Say writes one informational line.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Compile-time check that Console implements dupe.Prompter interface
var _ dupe.Prompter = (*Console)(nil)
