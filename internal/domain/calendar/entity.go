package calendar

import (
	"fmt"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
)

// Holiday is a company-wide paid non-working day.
type Holiday struct {
	ID        string
	Date      string // YYYY-MM-DD, IST calendar date
	Reason    string
	CreatedAt time.Time
}

// WeekOff is an employee-specific designated weekly off day. It overrides the
// company-wide default weekday rule for that date.
type WeekOff struct {
	ID            string
	EmployeeEmail string
	Date          string // YYYY-MM-DD, IST calendar date
	CreatedAt     time.Time
}

// DateSet is a membership set keyed by normalized "YYYY-MM-DD" strings.
type DateSet map[string]struct{}

// NewDateSet builds a set from raw date strings. Unparseable entries are
// skipped individually and reported as warnings, never fatal to the batch.
func NewDateSet(dates []string) (DateSet, []string) {
	set := make(DateSet, len(dates))
	var warnings []string
	for _, d := range dates {
		normalized, err := dateutil.Normalize(d)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped unparseable date %q", d))
			continue
		}
		set[normalized] = struct{}{}
	}
	return set, warnings
}

// Has reports whether the set contains the given normalized date string.
func (s DateSet) Has(date string) bool {
	_, ok := s[date]
	return ok
}
