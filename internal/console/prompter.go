package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads line-based decisions from the terminal. It implements the
// engine's decision-source contract: an invalid token is rejected and the
// question asked again, never silently defaulted.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// PromptChoice blocks until one of the valid tokens is entered
func (p *Prompter) PromptChoice(message string, valid []string) (string, error) {
	for {
		fmt.Fprint(p.out, message)

		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		token := strings.TrimSpace(line)
		for _, v := range valid {
			if token == v {
				fmt.Fprintln(p.out)
				return token, nil
			}
		}

		fmt.Fprintln(p.out, "\nPlease enter a valid choice.")
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
	}
}

// PromptAmount blocks until a positive dollar amount is entered
func (p *Prompter) PromptAmount(message string) (int64, error) {
	for {
		fmt.Fprint(p.out, message)

		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, err
		}

		amount, parseErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if parseErr == nil && amount > 0 {
			fmt.Fprintln(p.out)
			return amount, nil
		}

		fmt.Fprintln(p.out, "\nPlease enter a positive whole amount.")
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
	}
}
