package stats

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
)

// StationStats most popular stations and trip
type StationStats struct {
	MostCommonStartStation string
	MostCommonEndStation   string
	MostCommonTrip         string
}

// ComputeStationStats returns the most common start station, end station and combination of both.
// The combination is the start station and the end station joined by pairSeparator. Missing stations
// are not counted, and a trip with a missing side has no combination
func ComputeStationStats(table *dataset.Table, columns trip.Columns, pairSeparator string) (StationStats, error) {
	if table.Nrow() == 0 {
		return StationStats{}, ErrEmptyTable
	}

	startColumn, err := table.Column(columns.StartStation)
	if err != nil {
		return StationStats{}, err
	}

	endColumn, err := table.Column(columns.EndStation)
	if err != nil {
		return StationStats{}, err
	}

	startStations := startColumn.Records()
	endStations := endColumn.Records()
	startMissing := startColumn.IsNaN()
	endMissing := endColumn.IsNaN()

	startCounter := frequencycounter.NewFrequencyCounter[string]()
	endCounter := frequencycounter.NewFrequencyCounter[string]()
	tripCounter := frequencycounter.NewFrequencyCounter[string]()
	for idx := range startStations {
		if !startMissing[idx] {
			startCounter.UpdateCounter(startStations[idx])
		}
		if !endMissing[idx] {
			endCounter.UpdateCounter(endStations[idx])
		}
		if !startMissing[idx] && !endMissing[idx] {
			tripCounter.UpdateCounter(startStations[idx] + pairSeparator + endStations[idx])
		}
	}

	// Mode of a column holding only missing values is left empty
	mostCommonStartStation, _ := startCounter.Mode()
	mostCommonEndStation, _ := endCounter.Mode()
	mostCommonTrip, _ := tripCounter.Mode()

	return StationStats{
		MostCommonStartStation: mostCommonStartStation,
		MostCommonEndStation:   mostCommonEndStation,
		MostCommonTrip:         mostCommonTrip,
	}, nil
}
