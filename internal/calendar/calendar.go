package calendar

import (
	"time"

	"github.com/teamplan/backend/internal/types"
)

// DayKind classifies a calendar day.
//
// swagger:enum DayKind
type DayKind string

const (
	DayWorking DayKind = "WORKING_DAY"
	DayWeekend DayKind = "WEEKEND"
	DayHoliday DayKind = "HOLIDAY"
)

// Day is one day of a month grid.
type Day struct {
	Date        types.Date `json:"date" example:"2026-02-27"`
	DayOfMonth  int        `json:"dayOfMonth" example:"27"`          // Day number within the month
	Weekday     int        `json:"weekday" example:"4"`              // Weekday with Monday as 0
	Week        int        `json:"week" example:"9"`                 // ISO week number
	Kind        DayKind    `json:"kind" example:"WORKING_DAY"`       // Classification of the day
	HolidayName string     `json:"holidayName,omitempty" example:""` // Name of the holiday, if any
}

// IsWorkingDay reports whether the date is a working day: a weekday that
// is not a public holiday. If holidays is nil, the holiday set for the
// date's year is fetched.
func IsWorkingDay(date types.Date, holidays map[types.Date]string) bool {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return false
	}

	if holidays == nil {
		holidays = Holidays(date.Year(), date.Year())
	}

	_, isHoliday := holidays[date]
	return !isHoliday
}

// WorkingDaysBetween returns all working days in the inclusive range in
// ascending order. The result is empty if from is after until.
func WorkingDaysBetween(from, until types.Date) []types.Date {
	days := []types.Date{}
	if from.After(until) {
		return days
	}

	holidays := Holidays(from.Year(), until.Year())
	for date := from; !date.After(until); date = date.AddDays(1) {
		if IsWorkingDay(date, holidays) {
			days = append(days, date)
		}
	}

	return days
}

// WorkingDayCount returns the number of working days in a calendar month.
func WorkingDayCount(year int, month time.Month) int {
	from, until := monthBounds(year, month)
	return len(WorkingDaysBetween(from, until))
}

// MonthGrid returns one Day per calendar day of the month in ascending
// order, classified as working day, weekend or holiday.
func MonthGrid(year int, month time.Month) []Day {
	holidays := Holidays(year, year)
	from, until := monthBounds(year, month)

	days := make([]Day, 0, 31)
	for date := from; !date.After(until); date = date.AddDays(1) {
		day := Day{
			Date:       date,
			DayOfMonth: date.Day(),
			Weekday:    date.WeekdayIndex(),
		}
		_, day.Week = date.ISOWeek()

		if name, ok := holidays[date]; ok {
			day.Kind = DayHoliday
			day.HolidayName = name
		} else if date.WeekdayIndex() >= 5 {
			day.Kind = DayWeekend
		} else {
			day.Kind = DayWorking
		}

		days = append(days, day)
	}

	return days
}

// monthBounds returns the first and last date of a calendar month.
// December ends on the fixed 31st so that no month index past December
// is ever computed.
func monthBounds(year int, month time.Month) (types.Date, types.Date) {
	from := types.NewDate(year, month, 1)
	if month == time.December {
		return from, types.NewDate(year, 12, 31)
	}

	return from, types.NewDate(year, month+1, 1).AddDays(-1)
}
