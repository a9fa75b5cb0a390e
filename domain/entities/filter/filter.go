package filter

import (
	"bikeshare/utils"
	"fmt"
)

// All is the answer that disables the month or the day filter
const All = "all"

type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities contains every city with bikeshare data, in the order they are offered to the user
var Cities = []City{Chicago, NewYorkCity, Washington}

// Months that can be used as filter. The datasets only cover the first half of the year
var Months = []string{"january", "february", "march", "april", "may", "june"}

var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Month is a month name from Months or All
type Month string

// Day is a weekday name from Days or All
type Day string

// Selection contains the filters chosen by the user
// + City: city to analyze
// + Month: month to filter by, or "all" to apply no month filter
// + Day: day of week to filter by, or "all" to apply no day filter
type Selection struct {
	City  City
	Month Month
	Day   Day
}

func NewSelection(city City, month Month, day Day) Selection {
	return Selection{
		City:  city,
		Month: month,
		Day:   day,
	}
}

func (s Selection) String() string {
	return fmt.Sprintf("[city: %s][month: %s][day: %s]", s.City, s.Month, s.Day)
}

// ParseCity returns the City that matches value, ignoring case. If there is no match
// ErrInvalidCity is returned
func ParseCity(value string) (City, error) {
	normalized := utils.NormalizeAnswer(value)
	for _, city := range Cities {
		if string(city) == normalized {
			return city, nil
		}
	}
	return "", fmt.Errorf("%q: %w", value, ErrInvalidCity)
}

// ParseMonth returns the Month that matches value, ignoring case. Valid values are "all" and january to june
func ParseMonth(value string) (Month, error) {
	normalized := utils.NormalizeAnswer(value)
	if normalized == All || utils.ContainsString(normalized, Months) {
		return Month(normalized), nil
	}
	return "", fmt.Errorf("%q: %w", value, ErrInvalidMonth)
}

// ParseDay returns the Day that matches value, ignoring case. Valid values are "all" and the weekdays
func ParseDay(value string) (Day, error) {
	normalized := utils.NormalizeAnswer(value)
	if normalized == All || utils.ContainsString(normalized, Days) {
		return Day(normalized), nil
	}
	return "", fmt.Errorf("%q: %w", value, ErrInvalidDay)
}

func (m Month) IsAll() bool {
	return m == All
}

// Ordinal returns the 1-based month of the year. It must not be called on All
func (m Month) Ordinal() int {
	idx := utils.IndexOfString(string(m), Months)
	if idx < 0 {
		panic(fmt.Sprintf("[Month] %q has no ordinal", m))
	}
	return idx + 1
}

func (d Day) IsAll() bool {
	return d == All
}

// Title returns the weekday name as it is derived from a timestamp, e.g. "monday" -> "Monday"
func (d Day) Title() string {
	return utils.TitleCase(string(d))
}
