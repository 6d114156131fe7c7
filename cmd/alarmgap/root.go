package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	flagRegion string
	flagConfig string
	flagDebug  bool

	rootCmd = &cobra.Command{
		Use:   "alarmgap",
		Short: "CloudWatch Alarm Gap Auditor",
		Long: `Alarmgap - CloudWatch Alarm Gap Auditor

Alarmgap checks whether your EC2 instances, RDS databases, load
balancers and Lambda functions carry the CloudWatch alarms your policy
requires, and reports the gaps as text, HTML (S3), Slack and SNS.`,
		Version: version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging()
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagRegion, "region", "r", "us-east-1", "AWS region to audit")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "alarmgap.yaml", "Path to the policy file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}
