package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/alert-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle_FormatsEntries(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	window := domain.NewDateWindow(time.Date(2025, time.July, 9, 10, 0, 0, 0, time.UTC), 0)

	report := &domain.Report{
		Entries: []domain.ReportEntry{
			{Category: domain.Category{Name: "dart alerts", ID: "80"}, Window: window, URL: "https://a"},
			{Category: domain.Category{Name: "SCRUB alerts", ID: "91"}, Window: window, URL: "https://b"},
		},
	}

	require.NoError(t, reporter.Handle(report))

	want := "Dart Alerts (Date: 2025-07-09):\n" + reporter.Underline("https://a") + "\n" +
		"\n" +
		"Scrub Alerts (Date: 2025-07-09):\n" + reporter.Underline("https://b") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_Underline_UsesEscapeCodes(t *testing.T) {
	reporter := NewReporter(nil)

	got := reporter.Underline("https://example.com/?a=1&b=2")

	assert.True(t, strings.HasPrefix(got, "\x1b[4mhttps://example.com/?a=1&b=2\x1b["))
	assert.True(t, strings.HasSuffix(got, "m"))
}

func TestReporter_Render_EmptyReport(t *testing.T) {
	text, err := NewReporter(nil).Render(&domain.Report{})

	require.NoError(t, err)
	assert.Equal(t, "", text)
}
