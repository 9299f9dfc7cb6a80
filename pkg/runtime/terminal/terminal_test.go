package terminal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/alert-atlas/pkg/services/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	sent [][]byte
	err  error
}

func (f *fakeTransport) Send(_ context.Context, msg []byte) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type harness struct {
	cli       *CLI
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	transport *fakeTransport
	dryRun    bool
}

func newHarness(input string) *harness {
	h := &harness{
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		transport: &fakeTransport{},
	}
	h.cli = NewCLI(Options{
		Input:     strings.NewReader(input),
		Output:    h.stdout,
		ErrOutput: h.stderr,
		Now: func() time.Time {
			return time.Date(2025, time.July, 10, 13, 41, 0, 0, time.UTC)
		},
		CurrentUser: func() (*user.User, error) {
			return &user.User{Username: "jdoe"}, nil
		},
		Transports: h.registry(),
	})
	return h
}

func (h *harness) registry() notify.Registry {
	r := notify.NewRegistry()
	_ = r.Register(notify.TransportSendmail, func(notify.TransportSettings) (notify.Transport, error) {
		return h.transport, nil
	})
	_ = r.Register(notify.TransportDryRun, func(s notify.TransportSettings) (notify.Transport, error) {
		h.dryRun = true
		return h.transport, nil
	})
	return r
}

func (h *harness) run(args ...string) error {
	h.cli.SetArgs(args)
	return h.cli.ExecuteContext(context.Background())
}

func TestCLI_Report_ConfirmAndSend(t *testing.T) {
	// Given
	h := newHarness("1\n")

	// When
	err := h.run()

	// Then
	require.NoError(t, err)
	out := h.stdout.String()
	assert.Equal(t, 10, strings.Count(out, "(Date: "))
	assert.True(t, strings.HasPrefix(out, "Dart Alerts (Date: 2025-07-10):\n"))
	assert.Contains(t, out, "Scrub Alerts (Date: 2025-07-06):\n")
	assert.Contains(t, out, "[OK] Report sent to alerts@example.com.")

	require.Len(t, h.transport.sent, 1)
	msg := string(h.transport.sent[0])
	assert.True(t, strings.HasPrefix(msg, "Subject: Service Log Report - 2025-07-10 13:41:00\nTo: alerts@example.com\nFrom: jdoe@example.com\n\n"))
	assert.Contains(t, msg, "Dart Alerts (Date: 2025-07-10):")
	assert.False(t, h.dryRun)
}

func TestCLI_Report_Skip(t *testing.T) {
	h := newHarness("x\n0\n")

	err := h.run("report", "--days", "1")

	require.NoError(t, err)
	assert.Empty(t, h.transport.sent)
	assert.Equal(t, 2, strings.Count(h.stdout.String(), "(Date: "))
	assert.Contains(t, h.stdout.String(), "Invalid input. Enter 1 (send) or 0 (skip).")
	assert.Contains(t, h.stdout.String(), "Email not sent.")
}

func TestCLI_Report_TransportFaultDoesNotFailRun(t *testing.T) {
	h := newHarness("1\n")
	h.transport.err = &notify.TransportFault{Command: "sendmail -t", Err: errors.New("exit status 1")}

	err := h.run("--days", "0", "--dry-run")

	require.NoError(t, err)
	assert.True(t, h.dryRun)
	assert.Len(t, h.transport.sent, 1)
	assert.Contains(t, h.stderr.String(), "[ERROR] Failed to send email: sendmail -t: exit status 1")
}

func TestCLI_Report_NegativeDays(t *testing.T) {
	h := newHarness("")

	err := h.run("--days", "-2")

	assert.Error(t, err)
	assert.Empty(t, h.transport.sent)
}

func TestCLI_Report_MalformedTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := `template_url: "https://example.com/r?c={category_id}&bad=%zz"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	h := newHarness("1\n")

	err := h.run("--config", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate report")
	assert.Empty(t, h.transport.sent)
}

func TestCLI_Categories(t *testing.T) {
	h := newHarness("")

	err := h.run("categories")

	require.NoError(t, err)
	assert.Equal(t, "dart alerts\t80\nscrub alerts\t91\n", h.stdout.String())
}

func TestCLI_Report_UnknownTransport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "mail:\n  transport: smtp\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	h := newHarness("1\n")

	err := h.run("-c", path, "--days", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `transport "smtp" is not registered`)
	assert.Empty(t, h.transport.sent)
}
