// Package report renders gap audit results as text and HTML.
package report

import (
	"strings"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// AllGood is the report body when no gaps were found.
const AllGood = "All resources have required CloudWatch alarms."

// FormatText renders the gap list as a plain text report: a header, then
// one block per resource with an indented bullet per missing metric.
func FormatText(gaps []model.GapRecord) string {
	if len(gaps) == 0 {
		return AllGood
	}

	lines := []string{"CloudWatch Alarm Gap Report:\n"}

	for _, gap := range gaps {
		lines = append(lines, string(gap.ResourceType)+" "+gap.ResourceID+" missing alarms:")
		for _, metric := range gap.Missing {
			lines = append(lines, "  - "+metric)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
