package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	factory := func(TransportSettings) (Transport, error) { return NewSendmailTransport(""), nil }

	require.NoError(t, r.Register("custom", factory))
	assert.Error(t, r.Register("custom", factory))
	assert.Error(t, r.Register("", factory))
	assert.Error(t, r.Register("nil", nil))
	assert.Equal(t, []string{"custom"}, r.ListTransports())
}

func TestDefaultRegistry_Create(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{TransportDryRun, TransportSendmail}, r.ListTransports())

	sendmail, err := r.Create(TransportSendmail, TransportSettings{SendmailPath: "/usr/sbin/sendmail"})
	require.NoError(t, err)
	assert.Equal(t, "/usr/sbin/sendmail -t", sendmail.(*SendmailTransport).String())

	var buf bytes.Buffer
	dry, err := r.Create(TransportDryRun, TransportSettings{Output: &buf})
	require.NoError(t, err)
	require.NoError(t, dry.Send(context.Background(), []byte("msg")))
	assert.Equal(t, "[dry-run] sendmail -t\nmsg\n", buf.String())

	_, err = r.Create(TransportDryRun, TransportSettings{})
	assert.Error(t, err)

	_, err = r.Create("smtp", TransportSettings{})
	assert.Error(t, err)
}
