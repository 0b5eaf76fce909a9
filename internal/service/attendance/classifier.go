package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
)

// On-time window for a login punch, in minutes since IST midnight. A punch
// before the window counts as an unpaid leave, inside it as present, after it
// as a half day.
const (
	onTimeStartMinute = 9*60 + 30 // 09:30
	onTimeEndMinute   = 11 * 60   // 11:00
)

// Monthly allowances. One leave and one half day per month keep full pay.
const (
	paidLeaveAllowance   = 1
	paidHalfDayAllowance = 1
)

// DefaultWeekOffDay applies when a date has no explicit week-off entry and no
// weekday was configured. The company default is Tuesday.
const DefaultWeekOffDay = time.Tuesday

// Classify produces the day-by-day status sequence and aggregate counts for
// one employee and month. It is a pure function: identical inputs yield an
// identical summary, and concurrent calls share no state.
//
// Each day gets exactly one status, assigned in fixed precedence order:
// explicit week off, default-weekday week off, holiday, approved leave, then
// the punch-record lookup.
func Classify(records []attendance.Record, in attendance.ClassifyInput) (attendance.MonthSummary, error) {
	if err := in.Validate(); err != nil {
		return attendance.MonthSummary{}, err
	}

	weekOffDay := DefaultWeekOffDay
	if in.DefaultWeekOffDay != nil {
		weekOffDay = *in.DefaultWeekOffDay
	}

	daysInMonth := dateutil.DaysInMonth(in.Year, in.Month)
	upper := daysInMonth
	if in.TillToday && in.AsOfDay < upper {
		upper = in.AsOfDay
	}

	sum := attendance.MonthSummary{DaysEvaluated: upper}
	byDate, warnings := indexRecords(records, in.EmployeeEmail)
	sum.Warnings = warnings

	// Early-login leaves are unpaid regardless of the monthly allowance, so
	// they are tracked separately from the leave aggregate.
	earlyUnpaid := 0

	for day := 1; day <= upper; day++ {
		dateStr := dateutil.Date(in.Year, in.Month, day)

		var status attendance.DayStatus
		switch {
		case in.WeekOffs.Has(dateStr):
			status = attendance.StatusWeekOff
		case dateutil.WeekdayOf(in.Year, in.Month, day) == weekOffDay:
			status = attendance.StatusWeekOff
		case in.Holidays.Has(dateStr):
			status = attendance.StatusHoliday
		case in.ApprovedLeaves.Has(dateStr):
			status = attendance.StatusApprovedLeave
		default:
			rec, ok := byDate[dateStr]
			switch {
			case !ok:
				status = attendance.StatusAbsent
			case rec.Login == nil:
				sum.Warnings = append(sum.Warnings,
					fmt.Sprintf("record %s on %s has no usable login timestamp", rec.ID, dateStr))
				status = attendance.StatusAbsent
			default:
				minute := dateutil.MinuteOfDay(*rec.Login)
				switch {
				case minute < onTimeStartMinute:
					status = attendance.StatusLeave
					earlyUnpaid++
				case minute <= onTimeEndMinute:
					status = attendance.StatusPresent
				default:
					status = attendance.StatusHalfDay
				}
			}
		}

		switch status {
		case attendance.StatusWeekOff:
			sum.WeekOff++
		case attendance.StatusHoliday:
			sum.Holiday++
		case attendance.StatusApprovedLeave, attendance.StatusLeave:
			sum.Leave++
		case attendance.StatusAbsent:
			sum.Absent++
		case attendance.StatusPresent:
			sum.Present++
		case attendance.StatusHalfDay:
			sum.HalfDay++
		}
		sum.Days = append(sum.Days, attendance.DaySummary{Day: day, Status: status})
	}

	applyAllowances(&sum, earlyUnpaid)

	return sum, nil
}

// indexRecords maps the employee's records by normalized date. The email
// match is case-insensitive and the first record per date wins. Records with
// unparseable dates are excluded with a warning.
func indexRecords(records []attendance.Record, email string) (map[string]attendance.Record, []string) {
	byDate := make(map[string]attendance.Record)
	var warnings []string
	for _, rec := range records {
		if !strings.EqualFold(rec.EmployeeEmail, email) {
			continue
		}
		dateStr, err := dateutil.Normalize(rec.Date)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("record %s has unparseable date %q", rec.ID, rec.Date))
			continue
		}
		if _, exists := byDate[dateStr]; exists {
			continue
		}
		byDate[dateStr] = rec
	}
	return byDate, warnings
}

// applyAllowances derives the paid/unpaid split from the aggregate counts.
//
// Leave: one paid leave per month. Early-login leaves stay unpaid, so the
// final unpaid count is the greater of the early-login count and the excess
// over the allowance.
//
// Half days: one paid half day per month, remainder unpaid.
func applyAllowances(sum *attendance.MonthSummary, earlyUnpaid int) {
	sum.UnpaidLeaves = earlyUnpaid
	if sum.Leave > paidLeaveAllowance && sum.Leave-paidLeaveAllowance > sum.UnpaidLeaves {
		sum.UnpaidLeaves = sum.Leave - paidLeaveAllowance
	}
	paid := sum.Leave - sum.UnpaidLeaves
	if paid < 0 {
		paid = 0
	}
	if paid > paidLeaveAllowance {
		paid = paidLeaveAllowance
	}
	sum.PaidLeavesUsed = paid

	if sum.HalfDay > paidHalfDayAllowance {
		sum.PaidHalfDaysUsed = paidHalfDayAllowance
		sum.UnpaidHalfDays = sum.HalfDay - paidHalfDayAllowance
	} else {
		sum.PaidHalfDaysUsed = sum.HalfDay
	}
}
