package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikkoval/alarmgap/pkg/model"
)

func TestFormatTextNoGaps(t *testing.T) {
	assert.Equal(t, AllGood, FormatText(nil))
}

func TestFormatTextWithGaps(t *testing.T) {
	gaps := []model.GapRecord{
		{ResourceID: "i-123", ResourceType: model.TypeEC2, Missing: []string{"CPUUtilization", "StatusCheckFailed"}},
		{ResourceID: "my-db", ResourceType: model.TypeRDS, Missing: []string{"FreeStorageSpace"}},
	}

	text := FormatText(gaps)

	assert.True(t, strings.HasPrefix(text, "CloudWatch Alarm Gap Report:"))
	assert.Contains(t, text, "EC2 i-123 missing alarms:\n  - CPUUtilization\n  - StatusCheckFailed\n")
	assert.Contains(t, text, "RDS my-db missing alarms:\n  - FreeStorageSpace")
	// blank line separates records
	assert.Contains(t, text, "StatusCheckFailed\n\nRDS")
}

func TestFormatHTMLNoGaps(t *testing.T) {
	html, err := FormatHTML(nil)

	require.NoError(t, err)
	assert.Contains(t, html, "<b>All resources have required CloudWatch alarms.</b>")
	assert.NotContains(t, html, "<table>")
}

func TestFormatHTMLWithGaps(t *testing.T) {
	gaps := []model.GapRecord{
		{ResourceID: "i-123", ResourceType: model.TypeEC2, Missing: []string{"CPUUtilization", "StatusCheckFailed"}},
	}

	html, err := FormatHTML(gaps)

	require.NoError(t, err)
	assert.Contains(t, html, "<tr><th>Resource</th><th>Type</th><th>Missing Alarms</th></tr>")
	assert.Contains(t, html, "<td>i-123</td><td>EC2</td><td>CPUUtilization, StatusCheckFailed</td>")
}

func TestFormatHTMLEscapesIdentifiers(t *testing.T) {
	gaps := []model.GapRecord{
		{ResourceID: `<script>alert("x")</script>`, ResourceType: model.TypeEC2, Missing: []string{"CPUUtilization"}},
	}

	html, err := FormatHTML(gaps)

	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
