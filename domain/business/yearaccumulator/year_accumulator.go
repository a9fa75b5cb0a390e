package yearaccumulator

import "bikeshare/domain/business/frequencycounter"

// YearAccumulator struct that collects birth years of users
// + Earliest: oldest year collected
// + MostRecent: newest year collected
// + counter: appearances of each year, used to get the most common one
type YearAccumulator struct {
	Earliest   int
	MostRecent int
	counter    *frequencycounter.FrequencyCounter[int]
}

func NewYearAccumulator() *YearAccumulator {
	return &YearAccumulator{
		counter: frequencycounter.NewFrequencyCounter[int](),
	}
}

func (ya *YearAccumulator) UpdateAccumulator(year int) {
	if ya.IsEmpty() || year < ya.Earliest {
		ya.Earliest = year
	}
	if ya.IsEmpty() || year > ya.MostRecent {
		ya.MostRecent = year
	}
	ya.counter.UpdateCounter(year)
}

func (ya *YearAccumulator) IsEmpty() bool {
	return ya.counter.Len() == 0
}

func (ya *YearAccumulator) GetMostCommon() int {
	mostCommon, ok := ya.counter.Mode()
	if !ok {
		panic("[YearAccumulator] cannot get most common year, no years were collected")
	}
	return mostCommon
}
