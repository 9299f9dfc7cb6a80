package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/alert-atlas/pkg/models/domain"
	"github.com/de-tools/alert-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/alert-atlas/pkg/services/alerturl"
	"github.com/rs/zerolog"
)

// Generator builds one report URL per (day, category) pair
type Generator struct {
	template   alerturl.Template
	categories domain.Categories
}

func NewGenerator(tmpl alerturl.Template, categories domain.Categories) *Generator {
	return &Generator{
		template:   tmpl,
		categories: categories,
	}
}

// Generate walks offsets 0..days-1 starting at ref, most recent day first, and renders
// every category in declared order for each day.
func (g *Generator) Generate(ctx context.Context, ref time.Time, days int) (*domain.Report, error) {
	if days < 0 {
		return nil, fmt.Errorf("window days must not be negative, got %d", days)
	}

	report := &domain.Report{
		GeneratedAt: ref,
		Days:        days,
		Entries:     make([]domain.ReportEntry, 0, days*len(g.categories)),
	}

	for offset := 0; offset < days; offset++ {
		window := domain.NewDateWindow(ref, offset)
		for _, category := range g.categories {
			rendered, err := g.template.Render(category.ID, window)
			if err != nil {
				return nil, err
			}
			report.Entries = append(report.Entries, domain.ReportEntry{
				Category: category,
				Window:   window,
				URL:      rendered,
			})
		}
	}

	zerolog.Ctx(ctx).Debug().
		Int("days", days).
		Int("categories", len(g.categories)).
		Int("entries", len(report.Entries)).
		Msg("report generated")

	return report, nil
}

// GenerateReport renders the report block text for the given window
func GenerateReport(
	ctx context.Context,
	tmpl alerturl.Template,
	categories domain.Categories,
	days int,
	ref time.Time,
) (string, error) {
	report, err := NewGenerator(tmpl, categories).Generate(ctx, ref, days)
	if err != nil {
		return "", err
	}
	return export.NewReporter(nil).Render(report)
}
