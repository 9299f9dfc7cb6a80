package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMessage_Bytes(t *testing.T) {
	settings := Settings{
		Recipients:    []string{"a@example.com", "b@example.com"},
		Sender:        "jdoe@example.com",
		SubjectPrefix: "Service Log Report",
	}
	ts := time.Date(2025, time.July, 10, 13, 41, 5, 0, time.UTC)

	msg := NewMessage(settings, "BODY\n", ts)

	want := "Subject: Service Log Report - 2025-07-10 13:41:05\n" +
		"To: a@example.com, b@example.com\n" +
		"From: jdoe@example.com\n" +
		"\n" +
		"Here are the alert reports for the services processed on 2025-07-10 13:41:05:\n" +
		"\n" +
		"BODY\n"
	assert.Equal(t, want, string(msg.Bytes()))
}

func TestMessage_Bytes_StripsHeaderInjection(t *testing.T) {
	msg := Message{
		Subject: "hi\r\nBcc: evil@example.com",
		To:      []string{"a@example.com\nCc: x@example.com"},
		From:    "me@example.com",
		Body:    "line1\nline2",
	}

	out := string(msg.Bytes())
	headers, body, found := strings.Cut(out, "\n\n")

	assert.True(t, found)
	assert.Equal(t, 3, strings.Count(headers, "\n")+1)
	assert.Contains(t, headers, "Subject: hiBcc: evil@example.com")
	assert.Equal(t, "line1\nline2", body)
}
