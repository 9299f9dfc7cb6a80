package alerturl

// DateField is one of the ten date-range query fields overwritten per report window
type DateField int

const (
	MonthFrom DateField = iota
	DayFrom
	YearFrom
	HourFrom
	MinFrom
	MonthUntil
	DayUntil
	YearUntil
	HourUntil
	MinUntil
)

var dateFieldNames = [...]string{
	MonthFrom:  "__month_From",
	DayFrom:    "__day_From",
	YearFrom:   "__year_From",
	HourFrom:   "__hour_From",
	MinFrom:    "__min_From",
	MonthUntil: "__month_Until",
	DayUntil:   "__day_Until",
	YearUntil:  "__year_Until",
	HourUntil:  "__hour_Until",
	MinUntil:   "__min_Until",
}

// DateFields lists every field in the order they are written
func DateFields() []DateField {
	fields := make([]DateField, len(dateFieldNames))
	for i := range dateFieldNames {
		fields[i] = DateField(i)
	}
	return fields
}

func (f DateField) String() string {
	if f < 0 || int(f) >= len(dateFieldNames) {
		return "unknown"
	}
	return dateFieldNames[f]
}

func lookupDateField(name string) (DateField, bool) {
	for i, n := range dateFieldNames {
		if n == name {
			return DateField(i), true
		}
	}
	return 0, false
}
