package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Transport hands a fully formed message to a delivery agent
type Transport interface {
	Send(ctx context.Context, msg []byte) error
}

// TransportFault means the delivery agent could not be started, fed or did not exit cleanly
type TransportFault struct {
	Command string
	Err     error
	Stderr  string
}

func (e *TransportFault) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *TransportFault) Unwrap() error {
	return e.Err
}

// SendmailTransport pipes the message into `sendmail -t`, which reads recipients from headers
type SendmailTransport struct {
	path string
	args []string
}

func NewSendmailTransport(path string) *SendmailTransport {
	if path == "" {
		path = "sendmail"
	}
	return &SendmailTransport{
		path: path,
		args: []string{"-t"},
	}
}

func (s *SendmailTransport) Send(ctx context.Context, msg []byte) error {
	c := exec.CommandContext(ctx, s.path, s.args...)
	c.Stdin = bytes.NewReader(msg)

	var stderr bytes.Buffer
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return &TransportFault{
			Command: s.String(),
			Err:     err,
			Stderr:  strings.TrimSpace(stderr.String()),
		}
	}
	return nil
}

func (s *SendmailTransport) String() string {
	return strings.Join(append([]string{s.path}, s.args...), " ")
}

// DryRunTransport prints the message instead of delivering it
type DryRunTransport struct {
	out     io.Writer
	command string
}

func NewDryRunTransport(out io.Writer, command string) *DryRunTransport {
	return &DryRunTransport{out: out, command: command}
}

func (d *DryRunTransport) Send(_ context.Context, msg []byte) error {
	if _, err := fmt.Fprintf(d.out, "[dry-run] %s\n%s\n", d.command, msg); err != nil {
		return &TransportFault{Command: d.command, Err: err}
	}
	return nil
}
