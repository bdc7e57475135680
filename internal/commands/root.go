// internal/commands/root.go
package gauge

import (
	"fmt"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gauge/internal/appconfig"
	"github.com/mwiater/gauge/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gauge",
	Short: "gauge — run, store, and compare timed performance trials",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		for _, name := range []string{"debug", "progress"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}
		for _, name := range []string{"outputDir", "rawDir", "format", "logFile"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		if !cmd.Flags().Changed("timeout") {
			_ = cmd.Flags().Set("timeout", strconv.Itoa(viper.GetInt("timeout")))
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cfg.Debug {
			pp.Println(cfg)
		}

		return nil
	},
}

// GetConfig returns the configuration resolved for the current command.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().Bool("progress", false, "show a live progress view while running")
	rootCmd.PersistentFlags().String("outputDir", "", "directory for result files")
	rootCmd.PersistentFlags().String("rawDir", "", "directory for raw per-benchmark files")
	rootCmd.PersistentFlags().String("format", "json-pretty", "result file format (json, json-pretty, csv)")
	rootCmd.PersistentFlags().Int("timeout", 0, "per-benchmark timeout in seconds (0 = default)")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("progress", rootCmd.PersistentFlags().Lookup("progress"))
	_ = viper.BindPFlag("outputDir", rootCmd.PersistentFlags().Lookup("outputDir"))
	_ = viper.BindPFlag("rawDir", rootCmd.PersistentFlags().Lookup("rawDir"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}
