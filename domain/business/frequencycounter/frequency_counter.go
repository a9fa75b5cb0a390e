package frequencycounter

import "sort"

// ValueCount amount of times that Value was seen
type ValueCount[K comparable] struct {
	Value K
	Count int
}

// FrequencyCounter struct that counts how many times each value appears
// + counters: amount of appearances per value
// + order: values in the order they were first seen. It is used to break ties
type FrequencyCounter[K comparable] struct {
	counters map[K]int
	order    []K
}

func NewFrequencyCounter[K comparable]() *FrequencyCounter[K] {
	return &FrequencyCounter[K]{
		counters: make(map[K]int),
	}
}

// FromValues returns a FrequencyCounter with all the values already counted
func FromValues[K comparable](values []K) *FrequencyCounter[K] {
	counter := NewFrequencyCounter[K]()
	for _, value := range values {
		counter.UpdateCounter(value)
	}
	return counter
}

func (fc *FrequencyCounter[K]) UpdateCounter(value K) {
	if _, ok := fc.counters[value]; !ok {
		fc.order = append(fc.order, value)
	}
	fc.counters[value] += 1
}

func (fc *FrequencyCounter[K]) GetCounter(value K) int {
	return fc.counters[value]
}

// Len returns the amount of distinct values
func (fc *FrequencyCounter[K]) Len() int {
	return len(fc.order)
}

// Mode returns the most frequent value. If two values have the same amount of appearances
// the one that was seen first wins. False is returned if nothing was counted
func (fc *FrequencyCounter[K]) Mode() (K, bool) {
	var mode K
	maxCount := 0
	for _, value := range fc.order {
		if fc.counters[value] > maxCount {
			mode = value
			maxCount = fc.counters[value]
		}
	}
	return mode, maxCount > 0
}

// ValueCounts returns every value with its counter, sorted descending by counter.
// Values with the same counter keep the order in which they were first seen
func (fc *FrequencyCounter[K]) ValueCounts() []ValueCount[K] {
	valueCounts := make([]ValueCount[K], 0, len(fc.order))
	for _, value := range fc.order {
		valueCounts = append(valueCounts, ValueCount[K]{Value: value, Count: fc.counters[value]})
	}

	sort.SliceStable(valueCounts, func(i, j int) bool {
		return valueCounts[i].Count > valueCounts[j].Count
	})
	return valueCounts
}
