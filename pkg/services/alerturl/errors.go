package alerturl

import "fmt"

// ParseError is returned when the template URL or its query string cannot be decoded
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse template url %q: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
