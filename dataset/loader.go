package dataset

import (
	"bikeshare/config"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
)

const loaderStr = "dataset-loader"

// nanValues cells with one of these values are treated as missing
var nanValues = []string{"", "NA", "NaN", "<nil>"}

// Loader reads the trips file of a city and keeps the trips that match the filters chosen by the user
type Loader struct {
	config *config.ExplorerConfig
}

func NewLoader(explorerConfig *config.ExplorerConfig) *Loader {
	return &Loader{
		config: explorerConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderStr, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderStr, method, message)
}

// Load returns the trips of the selected city that match the month and day filters. The flow of this function is:
// 1. Read the trips file of the city
// 2. Parse the start time of each trip and add the month, day of week and hour columns
// 3. Keep the trips of the selected month, if any
// 4. Keep the trips of the selected day, if any
func (l *Loader) Load(selection filter.Selection) (*Table, error) {
	cityFilepath, err := l.config.GetCityFilepath(selection.City)
	if err != nil {
		return nil, err
	}

	table, err := l.readTripsFile(cityFilepath)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error reading %s", cityFilepath), err))
		return nil, err
	}
	log.Debug(l.getLogMessage("Load", fmt.Sprintf("%s %v trips read from %s", selection, table.Nrow(), cityFilepath), nil))

	table, err = AddTimeColumns(table, l.config.Columns.StartTime, l.config.TimeLayout)
	if err != nil {
		log.Error(l.getLogMessage("Load", "error deriving time columns", err))
		return nil, err
	}

	table, err = FilterByMonth(table, selection.Month)
	if err != nil {
		return nil, err
	}

	table, err = FilterByDay(table, selection.Day)
	if err != nil {
		return nil, err
	}

	log.Debug(l.getLogMessage("Load", fmt.Sprintf("%s %v trips after filtering", selection, table.Nrow()), nil))
	return table, nil
}

func (l *Loader) readTripsFile(tripsFilepath string) (*Table, error) {
	tripsFile, err := os.Open(tripsFilepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDataset, err)
	}

	defer func(tripsFile *os.File) {
		err := tripsFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", tripsFilepath, err.Error())
		}
	}(tripsFile)

	return ReadTrips(tripsFile, l.config.Columns)
}

// ReadTrips parses trips in CSV format. The start time is kept as string, the duration and the birth year
// as float and the rest of the columns as strings. An error is returned if a required column is missing
func ReadTrips(reader io.Reader, columns trip.Columns) (*Table, error) {
	frame := dataframe.ReadCSV(
		reader,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
		dataframe.WithTypes(map[string]series.Type{
			columns.StartTime: series.String,
			columns.Duration:  series.Float,
			columns.BirthYear: series.Float,
		}),
	)
	if frame.Err != nil {
		return nil, fmt.Errorf("%s: %w", frame.Err.Error(), ErrReadingDataset)
	}

	table := NewTable(frame)
	for _, requiredColumn := range columns.Required() {
		if !table.HasColumn(requiredColumn) {
			return nil, fmt.Errorf("%q: %w", requiredColumn, ErrMissingColumn)
		}
	}

	return table, nil
}

// AddTimeColumns returns a new Table with the month, day of week and hour of the start time of each trip
func AddTimeColumns(table *Table, startTimeColumn string, timeLayout string) (*Table, error) {
	startTimes, err := table.Strings(startTimeColumn)
	if err != nil {
		return nil, err
	}

	months := make([]int, len(startTimes))
	daysOfWeek := make([]string, len(startTimes))
	hours := make([]int, len(startTimes))
	for idx, startTimeStr := range startTimes {
		startTime, err := parseStartTime(startTimeStr, timeLayout)
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", idx+1, err)
		}
		months[idx] = int(startTime.Month())
		daysOfWeek[idx] = startTime.Weekday().String()
		hours[idx] = startTime.Hour()
	}

	derivedColumns := []series.Series{
		series.New(months, series.Int, trip.MonthColumn),
		series.New(daysOfWeek, series.String, trip.DayOfWeekColumn),
		series.New(hours, series.Int, trip.HourColumn),
	}
	for _, column := range derivedColumns {
		table, err = table.WithColumn(column)
		if err != nil {
			return nil, err
		}
	}

	return table, nil
}

// FilterByMonth keeps the trips that started in the given month. If month is "all" the table is returned as is
func FilterByMonth(table *Table, month filter.Month) (*Table, error) {
	if month.IsAll() {
		return table, nil
	}
	return table.Where(trip.MonthColumn, month.Ordinal())
}

// FilterByDay keeps the trips that started in the given day of week. If day is "all" the table is returned as is
func FilterByDay(table *Table, day filter.Day) (*Table, error) {
	if day.IsAll() {
		return table, nil
	}
	return table.Where(trip.DayOfWeekColumn, day.Title())
}

func parseStartTime(value string, timeLayout string) (time.Time, error) {
	for _, layout := range []string{timeLayout, time.RFC3339} {
		startTime, err := time.Parse(layout, value)
		if err == nil {
			return startTime, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", value, ErrInvalidStartTime)
}
