package main

import (
	"os"

	"github.com/limaJavier/scheduling/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	envPath       string
	configuration config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "scheduler lists every conflict-free combination of course sections a student can take",
	Long: `Scheduler filters the sections a student is eligible for by surname and department,
and enumerates every combination of one section per course that respects collisions
and the student's blocked windows`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configuration, err = config.Load(configPath, envPath)
		if err != nil {
			return err
		}
		return configuration.ApplyLogLevel()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", config.DefaultEnvPath, "Path to the .env file overriding the configuration")
}
