package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/spf13/cobra"

	"github.com/mikkoval/alarmgap/internal/audit"
	"github.com/mikkoval/alarmgap/internal/collector/aws"
	"github.com/mikkoval/alarmgap/internal/config"
	"github.com/mikkoval/alarmgap/internal/notify"
	"github.com/mikkoval/alarmgap/internal/runner"
	"github.com/mikkoval/alarmgap/internal/telemetry"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run one alarm gap audit and print the result",
	Long: `Run a single audit pass: collect resources and alarms, detect
gaps against the required-metrics policy, deliver the report, and print
the structured result as JSON on stdout.

Delivery destinations come from the environment: REPORT_S3_BUCKET,
REPORT_S3_PREFIX, SLACK_WEBHOOK_URL and SNS_TOPIC_ARN. An unset
destination disables that sink.`,
	Example: `  alarmgap audit                           # audit us-east-1 with ./alarmgap.yaml
  alarmgap audit --region eu-west-1        # audit another region
  alarmgap audit --config policies/prod.yaml`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	r, err := buildRunner(cmd.Context(), nil)
	if err != nil {
		return err
	}

	result, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// buildRunner wires collectors, detector and sinks from flags and env.
func buildRunner(ctx context.Context, metrics *telemetry.Metrics) (*runner.Runner, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	settings := config.SettingsFromEnv()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(flagRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	detector := audit.NewDetector(cfg.Policy(), cfg.TagFilter())

	return runner.New(
		aws.NewFromConfig(awsCfg, flagRegion),
		detector,
		notify.NewS3Uploader(s3.NewFromConfig(awsCfg), settings.ReportBucket, settings.ReportPrefix),
		notify.NewSlackClient(settings.SlackWebhookURL),
		notify.NewSNSPublisher(sns.NewFromConfig(awsCfg), settings.SNSTopicARN),
		metrics,
	), nil
}
