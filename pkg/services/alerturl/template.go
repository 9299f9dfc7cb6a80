package alerturl

import (
	"errors"
	"net/url"
	"strings"

	"github.com/de-tools/alert-atlas/pkg/models/domain"
)

const DefaultPlaceholder = "{category_id}"

// DefaultTemplate is the alert reporter instance detail report. The date-range fields carry
// placeholder defaults that are overwritten for every window.
const DefaultTemplate = "https://testme.com/cgi-bin/reporter/alertreporter?" +
	"__option_summary_collate_by=percent&report_type=instance_detail&__option_all_attributes=no&" +
	"__option_over_time_groupby=hour&__option_over_time_groupby_definition=no&" +
	"__option_over_time_use_graph=yes&__option_most_frequent_groupby=Alert+Instance+Key&" +
	"__option_most_frequent_use_defs=no&__option_most_frequent_threshhold=50&__option_p1_thres=1&" +
	"__option_p2_thres=20&__option_p3_p5_thres=50&__select_Active=1&__select_Category+ID={category_id}&" +
	"__exact_Definition+ID=exact&__exact_Alert+Name=substring&__exact_Ecor+Number=exact&" +
	"__exact_Region+Number=exact&__exact_Machine+IP=exact&__exact_Alert+Instance+Key=exact&" +
	"__exact_Owner+Email=substring&__exact_Ticket+ID=exact&__exact_AMS+Alert+Definition+ID=exact&" +
	"__dynamic_filter_=Install+Group&__exact_alert_data_value_1_=exact&__exact_alert_data_value_2_=exact&" +
	"__exact_alert_data_value_3_=exact&__exact_alert_data_value_4_=exact&gmtoffset=19800&" +
	"__time_options_=__use_start_&__month_From=7&__day_From=7&__year_From=2025&__hour_From=13&" +
	"__min_From=41&__month_Until=7&__day_Until=10&__year_Until=2025&__hour_Until=13&__min_Until=41&" +
	"__time_relation_Age=1&__time_unit_Age=Days&output_format=HTML&useNewWindow=on&timezone=gmt&" +
	"datasource=Production&Action=Create%20Report"

// Template is a report URL with a single category placeholder
type Template struct {
	Raw         string
	Placeholder string
}

func NewTemplate(raw, placeholder string) Template {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return Template{Raw: raw, Placeholder: placeholder}
}

// Expand substitutes the category identifier verbatim
func (t Template) Expand(categoryID string) string {
	return strings.ReplaceAll(t.Raw, t.Placeholder, categoryID)
}

// Render returns the URL for one category with the date-range fields set from w.
// Scheme, host, path and fragment are kept as they are.
func (t Template) Render(categoryID string, w domain.DateWindow) (string, error) {
	expanded := t.Expand(categoryID)

	u, err := url.Parse(expanded)
	if err != nil {
		return "", &ParseError{URL: expanded, Err: err}
	}

	q, err := ParseQuery(u.RawQuery)
	if err != nil {
		return "", &ParseError{URL: expanded, Err: errors.Unwrap(err)}
	}

	q.SetWindow(w)
	u.RawQuery = q.Encode()
	u.ForceQuery = false

	return u.String(), nil
}
