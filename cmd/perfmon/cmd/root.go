package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MeKo-Tech/perfmon/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Global configuration loader.
	configLoader *config.Loader
	// Global configuration.
	globalConfig *config.Config
	// Configuration file path.
	cfgFile string

	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "perfmon",
	Short: "Time commands and code regions",
	Long: `perfmon times named regions and reports how long they took.

It runs commands under a timer, logs one line per timed block through the
configured sink, and prints a summary report.

Examples:
  perfmon run -- make build
  perfmon run --name tests --repeat 3 -- go test ./...
  perfmon run --format json --sink none -- ./script.sh
  perfmon config init`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("version")
		if v {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "perfmon version %s\n", buildVersion)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", buildCommit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", buildDate)
			return nil
		}
		return cmd.Help()
	},
}

// SetVersionInfo records build metadata shown by --version.
func SetVersionInfo(version, commit, date string) {
	buildVersion, buildCommit, buildDate = version, commit, date
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in ., $HOME, $HOME/.config/perfmon, /etc/perfmon)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("version", false, "print version information and exit")

	bindFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	bindFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		// Logs go to stderr, stdout carries sink lines and the report
		logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: globalConfig.SlogLevel(),
		}))
		slog.SetDefault(logger)

		slog.Debug("configuration loaded", "file", configLoader.GetConfigFileUsed())
		return nil
	}
}

// flagBindings remembers which flags feed which configuration keys.
var flagBindings = map[string]*pflag.Flag{}

// bindFlag binds a flag to a configuration key on the global viper instance.
func bindFlag(key string, flag *pflag.Flag) {
	flagBindings[key] = flag
	_ = viper.BindPFlag(key, flag)
}

// rebindFlags re-applies all bindings, e.g. after viper.Reset.
func rebindFlags() {
	for key, flag := range flagBindings {
		_ = viper.BindPFlag(key, flag)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	configLoader = config.NewLoader()

	var err error
	if cfgFile != "" {
		globalConfig, err = configLoader.LoadWithFile(cfgFile)
	} else {
		globalConfig, err = configLoader.Load()
	}
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	return nil
}

// GetConfig returns the global configuration.
func GetConfig() *config.Config {
	if globalConfig == nil {
		if err := initConfig(); err != nil {
			cfg := config.DefaultConfig()
			return &cfg
		}
	}
	return globalConfig
}

// GetConfigLoader returns the global configuration loader.
func GetConfigLoader() *config.Loader {
	if configLoader == nil {
		configLoader = config.NewLoader()
	}
	return configLoader
}
