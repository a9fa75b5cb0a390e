package stats

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	"math"
)

// DurationStats total and average trip duration, in seconds
type DurationStats struct {
	TotalDuration   float64
	AverageDuration float64
}

// ComputeDurationStats returns the sum and the mean of the trip durations. Missing durations are skipped,
// any other value is used as is
func ComputeDurationStats(table *dataset.Table, columns trip.Columns) (DurationStats, error) {
	durations, err := table.Floats(columns.Duration)
	if err != nil {
		return DurationStats{}, err
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, duration := range durations {
		if math.IsNaN(duration) {
			continue
		}
		accumulator.UpdateAccumulator(duration)
	}

	if accumulator.Counter == 0 {
		return DurationStats{}, ErrEmptyTable
	}

	return DurationStats{
		TotalDuration:   accumulator.GetTotalDuration(),
		AverageDuration: accumulator.GetAverageDuration(),
	}, nil
}
