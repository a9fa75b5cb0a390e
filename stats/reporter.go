package stats

import (
	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const reporterStr = "stats-reporter"

// Separator line printed after each group of stats
var Separator = strings.Repeat("-", 40)

// Reporter prints the stats of a table of trips
type Reporter struct {
	out           io.Writer
	columns       trip.Columns
	pairSeparator string
}

func NewReporter(out io.Writer, explorerConfig *config.ExplorerConfig) *Reporter {
	return &Reporter{
		out:           out,
		columns:       explorerConfig.Columns,
		pairSeparator: explorerConfig.PairSeparator,
	}
}

func (r *Reporter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", reporterStr, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", reporterStr, method, message)
}

// ReportAll prints time, station, trip duration and user stats, in that order
func (r *Reporter) ReportAll(table *dataset.Table) error {
	reports := []func(*dataset.Table) error{
		r.ReportTimeStats,
		r.ReportStationStats,
		r.ReportDurationStats,
		r.ReportUserStats,
	}

	for _, report := range reports {
		if err := report(table); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) ReportTimeStats(table *dataset.Table) error {
	r.printf("\nCalculating The Most Frequent Times of Travel...\n\n")
	startTime := time.Now()

	timeStats, err := ComputeTimeStats(table)
	if err != nil {
		log.Error(r.getLogMessage("ReportTimeStats", "error computing time stats", err))
		return err
	}

	r.printf("The most common month is: %s\n", timeStats.MostCommonMonth)
	r.printf("The most common day of the week is: %s\n", timeStats.MostCommonDay)
	r.printf("The most common start hour is: %v\n", timeStats.MostCommonHour)
	r.printElapsed(startTime)
	return nil
}

func (r *Reporter) ReportStationStats(table *dataset.Table) error {
	r.printf("\nCalculating The Most Popular Stations and Trip...\n\n")
	startTime := time.Now()

	stationStats, err := ComputeStationStats(table, r.columns, r.pairSeparator)
	if err != nil {
		log.Error(r.getLogMessage("ReportStationStats", "error computing station stats", err))
		return err
	}

	r.printf("The most commonly used start station is: %s\n", stationStats.MostCommonStartStation)
	r.printf("The most commonly used end station is: %s\n", stationStats.MostCommonEndStation)
	r.printf("The most frequent combination of start station and end station trip is: %s\n", stationStats.MostCommonTrip)
	r.printElapsed(startTime)
	return nil
}

func (r *Reporter) ReportDurationStats(table *dataset.Table) error {
	r.printf("\nCalculating Trip Duration...\n\n")
	startTime := time.Now()

	durationStats, err := ComputeDurationStats(table, r.columns)
	if err != nil {
		log.Error(r.getLogMessage("ReportDurationStats", "error computing duration stats", err))
		return err
	}

	r.printf("The total travel time is: %s seconds\n", formatSeconds(durationStats.TotalDuration))
	r.printf("The mean travel time is: %s seconds\n", formatSeconds(durationStats.AverageDuration))
	r.printElapsed(startTime)
	return nil
}

func (r *Reporter) ReportUserStats(table *dataset.Table) error {
	r.printf("\nCalculating User Stats...\n\n")
	startTime := time.Now()

	userStats, err := ComputeUserStats(table, r.columns)
	if err != nil {
		log.Error(r.getLogMessage("ReportUserStats", "error computing user stats", err))
		return err
	}

	r.printf("User Type Counts:\n")
	r.printValueCounts(userStats.UserTypes)

	if genders, ok := userStats.Genders.Get(); ok {
		r.printf("Gender Counts:\n")
		r.printValueCounts(genders)
	} else {
		r.printf("Gender data not available.\n")
	}

	if birthYears, ok := userStats.BirthYears.Get(); ok {
		r.printf("Earliest Birth Year: %v\n", birthYears.Earliest)
		r.printf("Most Recent Birth Year: %v\n", birthYears.MostRecent)
		r.printf("Most Common Birth Year: %v\n", birthYears.MostCommon)
	} else {
		r.printf("Birth Year data not available.\n")
	}

	r.printElapsed(startTime)
	return nil
}

func (r *Reporter) printValueCounts(valueCounts []frequencycounter.ValueCount[string]) {
	for _, valueCount := range valueCounts {
		r.printf("  %s: %v\n", valueCount.Value, valueCount.Count)
	}
}

func (r *Reporter) printElapsed(startTime time.Time) {
	r.printf("\nThis took %v seconds.\n", time.Since(startTime).Seconds())
	r.printf("%s\n", Separator)
}

func (r *Reporter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
