package config

import "os"

// Env variable names for delivery destinations.
const (
	EnvReportBucket = "REPORT_S3_BUCKET"
	EnvReportPrefix = "REPORT_S3_PREFIX"
	EnvSlackWebhook = "SLACK_WEBHOOK_URL"
	EnvSNSTopicARN  = "SNS_TOPIC_ARN"
)

// Settings holds delivery destinations taken from the process
// environment. An unset destination disables that sink.
type Settings struct {
	ReportBucket    string
	ReportPrefix    string
	SlackWebhookURL string
	SNSTopicARN     string
}

// SettingsFromEnv reads delivery settings from the environment.
func SettingsFromEnv() Settings {
	prefix := os.Getenv(EnvReportPrefix)
	if prefix == "" {
		prefix = "reports"
	}

	return Settings{
		ReportBucket:    os.Getenv(EnvReportBucket),
		ReportPrefix:    prefix,
		SlackWebhookURL: os.Getenv(EnvSlackWebhook),
		SNSTopicARN:     os.Getenv(EnvSNSTopicARN),
	}
}
