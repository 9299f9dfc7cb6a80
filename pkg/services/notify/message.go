package notify

import (
	"strings"
	"time"
)

const TimestampLayout = "2006-01-02 15:04:05"

var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

// Message is a plain text mail: Subject, To and From headers followed by the body
type Message struct {
	Subject string
	To      []string
	From    string
	Body    string
}

// NewMessage wraps the report block with the subject and intro line for timestamp ts
func NewMessage(settings Settings, report string, ts time.Time) Message {
	stamp := ts.Format(TimestampLayout)
	return Message{
		Subject: settings.SubjectPrefix + " - " + stamp,
		To:      settings.Recipients,
		From:    settings.Sender,
		Body:    "Here are the alert reports for the services processed on " + stamp + ":\n\n" + report,
	}
}

// Bytes renders the message as fed to the delivery agent. CR and LF are stripped from
// header values to prevent header injection.
func (m Message) Bytes() []byte {
	to := make([]string, 0, len(m.To))
	for _, addr := range m.To {
		to = append(to, headerSanitizer.Replace(addr))
	}

	lines := []string{
		"Subject: " + headerSanitizer.Replace(m.Subject),
		"To: " + strings.Join(to, ", "),
		"From: " + headerSanitizer.Replace(m.From),
		"",
		m.Body,
	}
	return []byte(strings.Join(lines, "\n"))
}
