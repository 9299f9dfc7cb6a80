package notify

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/de-tools/alert-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Settings is the fixed mail configuration, resolved once before the notifier is built
type Settings struct {
	Recipients    []string
	Sender        string
	SubjectPrefix string
}

type Confirmer interface {
	Confirm(ctx context.Context) (Confirmation, error)
}

// Console receives operator facing status lines
type Console interface {
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type Options struct {
	Settings  Settings
	Confirmer Confirmer
	Transport Transport
	Console   Console
	Now       func() time.Time
}

type Notifier struct {
	settings  Settings
	confirmer Confirmer
	transport Transport
	console   Console
	now       func() time.Time
}

func NewNotifier(opts Options) *Notifier {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	settings := opts.Settings
	settings.Recipients = append([]string(nil), opts.Settings.Recipients...)

	return &Notifier{
		settings:  settings,
		confirmer: opts.Confirmer,
		transport: opts.Transport,
		console:   opts.Console,
		now:       opts.Now,
	}
}

func (n *Notifier) Settings() Settings {
	s := n.settings
	s.Recipients = append([]string(nil), n.settings.Recipients...)
	return s
}

// Deliver asks for confirmation and sends body to the configured recipients.
// Failures are reported on the console and logged once; they are never returned.
func (n *Notifier) Deliver(ctx context.Context, body string) domain.DeliveryOutcome {
	logger := zerolog.Ctx(ctx)
	ts := n.now()

	n.console.Warning("You are about to send the output via email.")
	answer, err := n.confirmer.Confirm(ctx)
	switch {
	case errors.Is(err, io.EOF):
		n.console.Info("Confirmation input closed. Email not sent.")
		return domain.Skipped()
	case err != nil:
		n.console.Info("Confirmation aborted: %v. Email not sent.", err)
		return domain.Skipped()
	case answer != Confirmed:
		n.console.Info("Email not sent. Exiting email sending step.")
		return domain.Skipped()
	}

	msg := NewMessage(n.settings, body, ts)
	to := strings.Join(n.settings.Recipients, ", ")

	if err := n.transport.Send(ctx, msg.Bytes()); err != nil {
		n.console.Error("Failed to send email: %v", err)
		logger.Error().Err(err).Str("to", to).Msg("failed to send email")
		return domain.Failed(err.Error())
	}

	n.console.Success("Report sent to %s.", to)
	return domain.Delivered()
}
