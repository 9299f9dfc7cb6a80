package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/alert-atlas/pkg/models/domain"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// entries are separated by a single blank line, each ends with a newline
const reportTemplate = `{{range $i, $e := .Entries}}{{if $i}}{{"\n"}}{{end}}` +
	`{{title $e.Category.Name}} (Date: {{$e.Window.Date}}):{{"\n"}}{{underline $e.URL}}{{"\n"}}{{end}}`

// Reporter writes the report block as plain text with every URL underlined
type Reporter struct {
	writer    io.Writer
	underline *color.Color
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}

	// The block is also used as the mail body, so emphasis does not depend on a TTY.
	underline := color.New(color.Underline)
	underline.EnableColor()

	return &Reporter{
		writer:    writer,
		underline: underline,
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	text, err := c.Render(report)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.writer, text)
	return err
}

// Render returns the report block without writing it
func (c *Reporter) Render(report *domain.Report) (string, error) {
	titler := cases.Title(language.Und)
	funcMap := template.FuncMap{
		"title":     titler.String,
		"underline": c.Underline,
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

func (c *Reporter) Underline(s string) string {
	return c.underline.Sprint(s)
}
