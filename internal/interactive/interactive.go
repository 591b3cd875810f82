// Package interactive provides line-based prompting over injected streams so
// the scaffold flow can be driven by scripted input in tests.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line-oriented answers from a reader, echoing prompts to a
// writer. Prompt strings are part of the tool's observable contract and are
// written exactly as given, with no trailing newline.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New returns a Prompter over the given streams.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Line prints the prompt and reads one line, trimmed of surrounding
// whitespace. A final unterminated line before EOF still counts.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm prints the prompt and reports whether the answer, trimmed and
// lowercased, is exactly "y". Anything else — including empty input and
// "yes" — declines.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}
