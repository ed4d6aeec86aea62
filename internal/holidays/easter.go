package holidays

import (
	"time"
)

// paschalFullMoons holds the month and day of the Paschal full moon for each
// position of the 19-year Metonic cycle (the Golden Number, year % 19).
// Valid for 1900 through 2199 inclusive.
var paschalFullMoons = [19]struct {
	month time.Month
	day   int
}{
	{time.April, 14},
	{time.April, 3},
	{time.March, 23},
	{time.April, 11},
	{time.March, 31},
	{time.April, 18},
	{time.April, 8},
	{time.March, 28},
	{time.April, 16},
	{time.April, 5},
	{time.March, 25},
	{time.April, 13},
	{time.April, 2},
	{time.March, 22},
	{time.April, 10},
	{time.March, 30},
	{time.April, 17},
	{time.April, 7},
	{time.March, 27},
}

// Easter returns Easter Sunday for the given year.
//
// Easter is the first Sunday strictly after the Paschal full moon, so a full
// moon falling on a Sunday moves a whole week forward.
//
// See https://en.wikipedia.org/wiki/Computus
func Easter(year int) (time.Time, error) {
	if err := checkYear(year); err != nil {
		return time.Time{}, err
	}

	fm := paschalFullMoons[year%19]
	fullMoon := date(year, fm.month, fm.day)

	return fullMoon.AddDate(0, 0, 7-int(fullMoon.Weekday())), nil
}

// date builds a calendar date at midnight UTC.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// EasterHolidays returns the national holidays derived from Easter:
// Páscoa, Sexta-feira Santa (Easter-2), Carnaval (Easter-47) and
// Corpus Christi (Easter+60).
func EasterHolidays(year int) ([]Holiday, error) {
	easter, err := Easter(year)
	if err != nil {
		return nil, err
	}

	holidays := make([]Holiday, 0, 4)
	moving := easter
	add := func(name string) {
		holidays = append(holidays, Holiday{
			Date: FormatDate(moving),
			Name: name,
			Type: TypeNacional,
		})
	}

	add("Páscoa")
	moving = moving.AddDate(0, 0, -2)
	add("Sexta-feira Santa")
	moving = moving.AddDate(0, 0, -45)
	add("Carnaval")
	moving = moving.AddDate(0, 0, 107)
	add("Corpus Christi")

	return holidays, nil
}

// LegalHolyWeekHolidays returns the court-only ("legal") holidays: Holy
// Thursday and Holy Wednesday, followed by the fixed legal dates.
func LegalHolyWeekHolidays(year int) ([]Holiday, error) {
	easter, err := Easter(year)
	if err != nil {
		return nil, err
	}

	holidays := make([]Holiday, 0, 2+len(tables.Legal))

	moving := easter.AddDate(0, 0, -3)
	holidays = append(holidays, Holiday{
		Date: FormatDate(moving),
		Name: "Feriado Legal - Quinta-feira Santa",
		Type: TypeLegal,
	})
	moving = moving.AddDate(0, 0, -1)
	holidays = append(holidays, Holiday{
		Date: FormatDate(moving),
		Name: "Feriado Legal - Quarta-feira Santa",
		Type: TypeLegal,
	})

	return append(holidays, expand(year, tables.Legal, TypeLegal)...), nil
}
