package stats

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
	"time"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	MostCommonMonth string
	MostCommonDay   string
	MostCommonHour  int
}

// ComputeTimeStats returns the most common month, day of week and start hour of the trips
func ComputeTimeStats(table *dataset.Table) (TimeStats, error) {
	months, err := table.Ints(trip.MonthColumn)
	if err != nil {
		return TimeStats{}, err
	}

	days, err := table.Strings(trip.DayOfWeekColumn)
	if err != nil {
		return TimeStats{}, err
	}

	hours, err := table.Ints(trip.HourColumn)
	if err != nil {
		return TimeStats{}, err
	}

	monthNames := make([]string, len(months))
	for idx, month := range months {
		monthNames[idx] = time.Month(month).String()
	}

	mostCommonMonth, ok := frequencycounter.FromValues(monthNames).Mode()
	if !ok {
		return TimeStats{}, ErrEmptyTable
	}
	mostCommonDay, _ := frequencycounter.FromValues(days).Mode()
	mostCommonHour, _ := frequencycounter.FromValues(hours).Mode()

	return TimeStats{
		MostCommonMonth: mostCommonMonth,
		MostCommonDay:   mostCommonDay,
		MostCommonHour:  mostCommonHour,
	}, nil
}
