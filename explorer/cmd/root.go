package cmd

import (
	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/prompt"
	"bikeshare/session"
	"bikeshare/stats"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const configFlag = "config"

// NewRootCommand returns the bikeshare command. The interactive session reads from in and writes to out
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var (
		configFilepath string
		dataDir        string
		logLevel       string
	)

	rootCMD := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare data",
		Long: `An interactive tool to explore bikeshare trips of Chicago, New York City and Washington.
It asks for a city, a month and a day of the week and prints the most frequent times
of travel, the most popular stations and trip, trip duration and user stats.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explorerConfig, err := loadConfig(configFilepath, cmd.Flags().Changed(configFlag))
			if err != nil {
				return err
			}

			if dataDir != "" {
				explorerConfig.DataDir = dataDir
			}
			if logLevel != "" {
				explorerConfig.LogLevel = logLevel
			}

			if err = InitLogger(explorerConfig.LogLevel); err != nil {
				return err
			}

			explorerSession := session.NewSession(
				prompt.NewCollector(in, out),
				dataset.NewLoader(explorerConfig),
				stats.NewReporter(out, explorerConfig),
				out,
			)
			return explorerSession.Run()
		},
	}

	rootCMD.SetOut(out)
	rootCMD.Flags().StringVar(&configFilepath, configFlag, config.DefaultConfigFilepath, "path to the yaml config file")
	rootCMD.Flags().StringVar(&dataDir, "data-dir", "", "directory that contains the trips files")
	rootCMD.Flags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	return rootCMD
}

// loadConfig reads the config file. If the default file does not exist the default config is used,
// a file given by flag must exist
func loadConfig(configFilepath string, explicit bool) (*config.ExplorerConfig, error) {
	explorerConfig, err := config.LoadConfig(configFilepath)
	if err == nil {
		return explorerConfig, nil
	}

	if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	log.Debugf("[method: loadConfig] %s not found, using default config", configFilepath)
	explorerConfig = config.Default()
	explorerConfig.ApplyEnv()
	return explorerConfig, nil
}

func Execute() {
	if err := InitLogger("info"); err != nil {
		log.Fatalf("%s", err)
	}

	// .env is optional
	_ = godotenv.Load()

	if err := NewRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}
