package stats

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/yearaccumulator"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
	"math"

	"github.com/go-gota/gota/series"
)

// BirthYearStats earliest, most recent and most common year of birth
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats counts of each type of user. Gender and BirthYear are empty when the dataset does not have them
type UserStats struct {
	UserTypes  []frequencycounter.ValueCount[string]
	Genders    utils.Optional[[]frequencycounter.ValueCount[string]]
	BirthYears utils.Optional[BirthYearStats]
}

// ComputeUserStats returns the stats of the users of the trips. Gender and birth year are looked up
// independently, the absence of one of them does not affect the other
func ComputeUserStats(table *dataset.Table, columns trip.Columns) (UserStats, error) {
	userTypeColumn, err := table.Column(columns.UserType)
	if err != nil {
		return UserStats{}, err
	}

	userStats := UserStats{
		UserTypes:  countValues(userTypeColumn),
		Genders:    utils.None[[]frequencycounter.ValueCount[string]](),
		BirthYears: utils.None[BirthYearStats](),
	}

	if genderColumn, ok := table.OptionalColumn(columns.Gender).Get(); ok {
		userStats.Genders = utils.Some(countValues(genderColumn))
	}

	if birthYearColumn, ok := table.OptionalColumn(columns.BirthYear).Get(); ok {
		userStats.BirthYears = getBirthYearStats(birthYearColumn)
	}

	return userStats, nil
}

// countValues returns the value counts of the column, without missing values
func countValues(column series.Series) []frequencycounter.ValueCount[string] {
	counter := frequencycounter.NewFrequencyCounter[string]()
	missing := column.IsNaN()
	for idx, value := range column.Records() {
		if missing[idx] {
			continue
		}
		counter.UpdateCounter(value)
	}
	return counter.ValueCounts()
}

// getBirthYearStats returns an empty Optional if the column only has missing values
func getBirthYearStats(column series.Series) utils.Optional[BirthYearStats] {
	accumulator := yearaccumulator.NewYearAccumulator()
	for _, birthYear := range column.Float() {
		if math.IsNaN(birthYear) {
			continue
		}
		accumulator.UpdateAccumulator(int(birthYear))
	}

	if accumulator.IsEmpty() {
		return utils.None[BirthYearStats]()
	}

	return utils.Some(BirthYearStats{
		Earliest:   accumulator.Earliest,
		MostRecent: accumulator.MostRecent,
		MostCommon: accumulator.GetMostCommon(),
	})
}
