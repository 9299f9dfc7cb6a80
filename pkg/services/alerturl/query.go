package alerturl

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/de-tools/alert-atlas/pkg/models/domain"
)

// Query is a decoded query string. The ten date-range fields are held in a typed map,
// everything else passes through untouched. Field order is the order of first appearance.
type Query struct {
	order       []string
	dates       map[DateField][]string
	passthrough map[string][]string
}

func newQuery() *Query {
	return &Query{
		dates:       make(map[DateField][]string),
		passthrough: make(map[string][]string),
	}
}

// ParseQuery decodes raw with form semantics ('+' is a space). Repeated fields collect
// all their values and blank values are kept.
func ParseQuery(raw string) (*Query, error) {
	q := newQuery()
	rest := raw
	for rest != "" {
		var pair string
		pair, rest, _ = strings.Cut(rest, "&")
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, &ParseError{URL: raw, Err: err}
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, &ParseError{URL: raw, Err: err}
		}
		q.Add(key, value)
	}
	return q, nil
}

// Add appends a value to the named field
func (q *Query) Add(name, value string) {
	if !q.Has(name) {
		q.order = append(q.order, name)
	}
	if f, ok := lookupDateField(name); ok {
		q.dates[f] = append(q.dates[f], value)
		return
	}
	q.passthrough[name] = append(q.passthrough[name], value)
}

func (q *Query) Has(name string) bool {
	if f, ok := lookupDateField(name); ok {
		_, exists := q.dates[f]
		return exists
	}
	_, exists := q.passthrough[name]
	return exists
}

// Values returns a copy of the values stored for name
func (q *Query) Values(name string) []string {
	var values []string
	if f, ok := lookupDateField(name); ok {
		values = q.dates[f]
	} else {
		values = q.passthrough[name]
	}
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}

// Fields returns the field names in order of first appearance
func (q *Query) Fields() []string {
	return append([]string(nil), q.order...)
}

// Set replaces every value of a date field with a single value.
// A field missing from the query is appended at the end.
func (q *Query) Set(f DateField, value string) {
	if _, exists := q.dates[f]; !exists {
		q.order = append(q.order, f.String())
	}
	q.dates[f] = []string{value}
}

// SetWindow overwrites the from/until month, day, year, hour and minute fields.
// Values are unpadded decimals.
func (q *Query) SetWindow(w domain.DateWindow) {
	q.Set(MonthFrom, strconv.Itoa(int(w.Start.Month())))
	q.Set(DayFrom, strconv.Itoa(w.Start.Day()))
	q.Set(YearFrom, strconv.Itoa(w.Start.Year()))
	q.Set(HourFrom, strconv.Itoa(w.Start.Hour()))
	q.Set(MinFrom, strconv.Itoa(w.Start.Minute()))

	q.Set(MonthUntil, strconv.Itoa(int(w.End.Month())))
	q.Set(DayUntil, strconv.Itoa(w.End.Day()))
	q.Set(YearUntil, strconv.Itoa(w.End.Year()))
	q.Set(HourUntil, strconv.Itoa(w.End.Hour()))
	q.Set(MinUntil, strconv.Itoa(w.End.Minute()))
}

// Encode writes every field back as key=value pairs, one pair per value
func (q *Query) Encode() string {
	var sb strings.Builder
	for _, name := range q.order {
		key := url.QueryEscape(name)
		for _, v := range q.Values(name) {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(key)
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(v))
		}
	}
	return sb.String()
}

// Map returns the field to values mapping
func (q *Query) Map() map[string][]string {
	m := make(map[string][]string, len(q.order))
	for _, name := range q.order {
		m[name] = q.Values(name)
	}
	return m
}
