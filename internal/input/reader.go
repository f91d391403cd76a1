package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	invalidNumberNotice = "Invalid input. Please enter a number."
	invalidYesNoNotice  = "Invalid input. Please type 'yes' or 'no'."
)

// ErrClosed is returned once the input stream has no more tokens.
var ErrClosed = fmt.Errorf("input closed: %w", io.EOF)

// Reader reads whitespace-delimited tokens and re-prompts until a token
// of the requested shape arrives. Prompts and notices go to out.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Reader{
		scanner: scanner,
		out:     out,
	}
}

// Out returns the writer prompts are printed to.
func (r *Reader) Out() io.Writer {
	return r.out
}

// ReadInt prints prompt and returns the first token that parses as a
// base-10 integer. Tokens that don't parse are consumed and reported, and
// the prompt is shown again.
func (r *Reader) ReadInt(prompt string) (int, error) {
	for {
		fmt.Fprint(r.out, prompt)
		token, err := r.next()
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(token)
		if err != nil {
			fmt.Fprintln(r.out, invalidNumberNotice)
			continue
		}
		return value, nil
	}
}

// ReadYesNo prints prompt on its own line and loops until the answer is
// one of yes, y, no or n (case-insensitive).
func (r *Reader) ReadYesNo(prompt string) (bool, error) {
	for {
		fmt.Fprintln(r.out, prompt)
		token, err := r.next()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(token)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			fmt.Fprintln(r.out, invalidYesNoNotice)
		}
	}
}

func (r *Reader) next() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", ErrClosed
}
