package shared

import "time"

// Date inputs arrive in two shapes: joining dates from onboarding forms as
// plain YYYY-MM-DD, and timestamps from API clients as RFC3339.
var acceptedDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses value against the accepted layouts. An empty string parses
// to the zero time so optional fields can fall through to a default.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range acceptedDateLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}
