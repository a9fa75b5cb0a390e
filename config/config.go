package config

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFilepath = "./config/config.yaml"

	logLevelEnvVarName = "LOG_LEVEL"
	dataDirEnvVarName  = "DATA_DIR"

	defaultLogLevel      = "info"
	defaultDataDir       = "."
	defaultTimeLayout    = "2006-01-02 15:04:05"
	defaultPairSeparator = "-"
)

// CityFiles contains the name of the trips file of each city
type CityFiles struct {
	Chicago     string `yaml:"chicago" validate:"required"`
	NewYorkCity string `yaml:"new_york_city" validate:"required"`
	Washington  string `yaml:"washington" validate:"required"`
}

// ExplorerConfig configuration of the bikeshare explorer
// + LogLevel: logrus level
// + DataDir: directory that contains the trips files
// + TimeLayout: layout used to parse the start time of each trip
// + PairSeparator: string placed between the start and the end station of a trip
// + CityFiles: trips file of each city, relative to DataDir
// + Columns: header names of the trips files
type ExplorerConfig struct {
	LogLevel      string       `yaml:"log_level" validate:"required"`
	DataDir       string       `yaml:"data_dir" validate:"required"`
	TimeLayout    string       `yaml:"time_layout" validate:"required"`
	PairSeparator string       `yaml:"pair_separator" validate:"required"`
	CityFiles     CityFiles    `yaml:"city_files"`
	Columns       trip.Columns `yaml:"columns"`
}

// Default returns the configuration used when there is no config file
func Default() *ExplorerConfig {
	cfg := &ExplorerConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads the yaml file located in configFilepath. Empty fields are filled with default values
// and LOG_LEVEL and DATA_DIR environment variables override the values of the file
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	explorerConfig.applyDefaults()
	explorerConfig.ApplyEnv()

	if err = explorerConfig.Validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

// ApplyEnv overrides the config with the values of the environment variables that are set
func (c *ExplorerConfig) ApplyEnv() {
	if logLevel := os.Getenv(logLevelEnvVarName); logLevel != "" {
		c.LogLevel = logLevel
	}

	if dataDir := os.Getenv(dataDirEnvVarName); dataDir != "" {
		c.DataDir = dataDir
	}
}

func (c *ExplorerConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}
	return nil
}

// GetCityFilepath returns the path to the trips file of the given city
func (c *ExplorerConfig) GetCityFilepath(city filter.City) (string, error) {
	var filename string
	switch city {
	case filter.Chicago:
		filename = c.CityFiles.Chicago
	case filter.NewYorkCity:
		filename = c.CityFiles.NewYorkCity
	case filter.Washington:
		filename = c.CityFiles.Washington
	default:
		return "", fmt.Errorf("%q: %w", city, filter.ErrInvalidCity)
	}
	return filepath.Join(c.DataDir, filename), nil
}

func (c *ExplorerConfig) applyDefaults() {
	setDefault(&c.LogLevel, defaultLogLevel)
	setDefault(&c.DataDir, defaultDataDir)
	setDefault(&c.TimeLayout, defaultTimeLayout)
	setDefault(&c.PairSeparator, defaultPairSeparator)

	setDefault(&c.CityFiles.Chicago, "chicago.csv")
	setDefault(&c.CityFiles.NewYorkCity, "new_york_city.csv")
	setDefault(&c.CityFiles.Washington, "washington.csv")

	defaultColumns := trip.DefaultColumns()
	setDefault(&c.Columns.StartTime, defaultColumns.StartTime)
	setDefault(&c.Columns.Duration, defaultColumns.Duration)
	setDefault(&c.Columns.StartStation, defaultColumns.StartStation)
	setDefault(&c.Columns.EndStation, defaultColumns.EndStation)
	setDefault(&c.Columns.UserType, defaultColumns.UserType)
	setDefault(&c.Columns.Gender, defaultColumns.Gender)
	setDefault(&c.Columns.BirthYear, defaultColumns.BirthYear)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
