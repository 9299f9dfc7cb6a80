package notify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Confirmation is the operator's answer to a single prompt
type Confirmation int

const (
	Invalid Confirmation = iota
	Confirmed
	Declined
)

func (c Confirmation) String() string {
	switch c {
	case Confirmed:
		return "confirmed"
	case Declined:
		return "declined"
	default:
		return "invalid"
	}
}

const (
	SendToken = "1"
	SkipToken = "0"

	defaultQuestion   = "Enter 1 to send email, 0 to skip sending: "
	defaultValidation = "Invalid input. Enter 1 (send) or 0 (skip)."
)

// Prompt asks a yes/no question on an injectable input source
type Prompt struct {
	scanner    *bufio.Scanner
	out        io.Writer
	question   string
	validation string
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		scanner:    bufio.NewScanner(in),
		out:        out,
		question:   defaultQuestion,
		validation: defaultValidation,
	}
}

// Ask prints the question and classifies one line of input.
// io.EOF is returned once the input is exhausted.
func (p *Prompt) Ask() (Confirmation, error) {
	fmt.Fprint(p.out, p.question)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return Invalid, fmt.Errorf("failed to read confirmation: %w", err)
		}
		fmt.Fprintln(p.out)
		return Invalid, io.EOF
	}

	switch strings.TrimSpace(p.scanner.Text()) {
	case SendToken:
		return Confirmed, nil
	case SkipToken:
		return Declined, nil
	default:
		return Invalid, nil
	}
}

// Confirm asks until the answer is Confirmed or Declined. There is no attempt limit,
// only a cancelled context or a read error ends the loop early.
func (p *Prompt) Confirm(ctx context.Context) (Confirmation, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Invalid, err
		}

		answer, err := p.Ask()
		if err != nil {
			return Invalid, err
		}
		if answer != Invalid {
			return answer, nil
		}
		fmt.Fprintln(p.out, p.validation)
	}
}
