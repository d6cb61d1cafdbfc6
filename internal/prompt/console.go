// =============================================================================
// Trucking Delivery Tracker - Console
// =============================================================================
//
// Console wraps the line-oriented terminal the collectors talk to. Reading is
// blocking and has no timeout. End of input is reported as ErrInputClosed,
// which is the only way a prompt loop can end without a value.
//
// =============================================================================

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/validation"
)

// ErrInputClosed is returned when the input stream ends while a prompt is
// waiting for an answer.
var ErrInputClosed = errors.New("input closed")

// Console reads answers from in and writes prompts and messages to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Out returns the output stream.
func (c *Console) Out() io.Writer { return c.out }

// Println writes a line of output.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Ask prints prompt and returns the next input line without its line ending.
// A final line without a newline is still returned; ErrInputClosed is
// returned only when nothing is left to read.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			fmt.Fprintln(c.out)
			return "", ErrInputClosed
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// AskUntilValid repeats prompt until parse accepts the answer. Rejections
// print the validation message and ask again, with no retry limit.
func AskUntilValid[T any](c *Console, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := c.Ask(prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}

		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			c.Println(ve.Message)
		} else {
			c.Println(err.Error())
		}
	}
}
