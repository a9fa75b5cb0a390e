package trip

// Names of the columns derived from the start time of each trip
const (
	MonthColumn     = "month"
	DayOfWeekColumn = "day_of_week"
	HourColumn      = "hour"
)

// Columns contains the header name of each field to analyze in a trips file
// + StartTime: date and time in which the trip begins
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: type of user, e.g. Subscriber or Customer
// + Gender: gender of the user. Not every city has it
// + BirthYear: year of birth of the user. Not every city has it
type Columns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	Duration     string `yaml:"duration" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// DefaultColumns returns the header names used by the bikeshare datasets
func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		Duration:     "Trip Duration",
		StartStation: "Start Station",
		EndStation:   "End Station",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// Required returns the columns that every trips file must have
func (c Columns) Required() []string {
	return []string{c.StartTime, c.Duration, c.StartStation, c.EndStation, c.UserType}
}
