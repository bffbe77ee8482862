// Package calendar implements the Swedish working-day calendar.
package calendar

import (
	"sync"
	"time"

	"github.com/teamplan/backend/internal/types"
)

var holidayCache = struct {
	sync.Mutex
	years map[int]map[types.Date]string
}{years: map[int]map[types.Date]string{}}

// Holidays returns all Swedish public holidays for the inclusive year
// range, keyed by date. Results are cached per year since the set is a
// pure function of the year.
func Holidays(yearFrom, yearTo int) map[types.Date]string {
	holidays := make(map[types.Date]string)

	holidayCache.Lock()
	defer holidayCache.Unlock()

	for year := yearFrom; year <= yearTo; year++ {
		forYear, ok := holidayCache.years[year]
		if !ok {
			forYear = holidaysForYear(year)
			holidayCache.years[year] = forYear
		}

		for date, name := range forYear {
			holidays[date] = name
		}
	}

	return holidays
}

// holidaysForYear computes the Swedish public holidays for a single year.
func holidaysForYear(year int) map[types.Date]string {
	holidays := map[types.Date]string{
		types.NewDate(year, 1, 1):   "Nyårsdagen",
		types.NewDate(year, 1, 6):   "Trettondedag jul",
		types.NewDate(year, 5, 1):   "Första maj",
		types.NewDate(year, 6, 6):   "Sveriges nationaldag",
		types.NewDate(year, 12, 24): "Julafton",
		types.NewDate(year, 12, 25): "Juldagen",
		types.NewDate(year, 12, 26): "Annandag jul",
		types.NewDate(year, 12, 31): "Nyårsafton",
	}

	// Easter-derived holidays
	easter := easterSunday(year)
	holidays[easter.AddDays(-2)] = "Långfredagen"
	holidays[easter] = "Påskdagen"
	holidays[easter.AddDays(1)] = "Annandag påsk"
	holidays[easter.AddDays(39)] = "Kristi himmelsfärdsdag"
	holidays[easter.AddDays(49)] = "Pingstdagen"

	// Midsummer Day is the Saturday between June 20 and June 26,
	// Midsummer Eve the Friday before it.
	midsummer := saturdayOnOrAfter(types.NewDate(year, 6, 20))
	holidays[midsummer.AddDays(-1)] = "Midsommarafton"
	holidays[midsummer] = "Midsommardagen"

	// All Saints' Day is the Saturday between October 31 and November 6.
	holidays[saturdayOnOrAfter(types.NewDate(year, 10, 31))] = "Alla helgons dag"

	return holidays
}

// easterSunday calculates Easter Sunday using the Meeus/Jones/Butcher
// algorithm.
func easterSunday(year int) types.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return types.NewDate(year, time.Month(month), day)
}

// saturdayOnOrAfter returns the first Saturday on or after the date.
func saturdayOnOrAfter(date types.Date) types.Date {
	for date.Weekday() != time.Saturday {
		date = date.AddDays(1)
	}

	return date
}
