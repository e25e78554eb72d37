// internal/util/validate.go
package util

import (
	"fmt"
	"regexp"
	"time"
)

// Local part must start with a letter, domain labels likewise, and the TLD is
// at least two lowercase letters.
var emailPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._%+-]*@[A-Za-z][A-Za-z0-9-]*(\.[A-Za-z][A-Za-z0-9-]*)*\.[a-z]{2,}$`)

// ValidateEmail reports whether email has a plausible local-part/domain/TLD shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// PeriodLayout is the wire format for transaction time ranges.
const PeriodLayout = "2006-01-02"

// ValidatePeriod parses a start/end date pair and checks that start is not
// after end.
func ValidatePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(PeriodLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q not formatted as %s", ErrInvalidPeriod, start, PeriodLayout)
	}
	endDate, err := time.Parse(PeriodLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q not formatted as %s", ErrInvalidPeriod, end, PeriodLayout)
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start is after end", ErrInvalidPeriod)
	}
	return startDate, endDate, nil
}
