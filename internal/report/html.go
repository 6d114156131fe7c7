package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// Resource IDs and metric names come from provider APIs; they are still
// untrusted text once embedded in a document, so rendering goes through
// html/template for escaping.
var htmlReport = template.Must(template.New("report").Parse(`<html><head><style>
body{font-family:Arial;margin:20px;}
table{border-collapse:collapse;width:100%;}
th,td{border:1px solid #ccc;padding:8px;}
th{background:#f5f5f5;text-align:left;}
</style></head><body>
<h2>CloudWatch Alarm Gap Report</h2>
{{- if not .Rows}}
<p><b>All resources have required CloudWatch alarms.</b></p>
{{- else}}
<table>
<tr><th>Resource</th><th>Type</th><th>Missing Alarms</th></tr>
{{- range .Rows}}
<tr><td>{{.Resource}}</td><td>{{.Type}}</td><td>{{.Missing}}</td></tr>
{{- end}}
</table>
{{- end}}
</body></html>
`))

type htmlRow struct {
	Resource string
	Type     string
	Missing  string
}

// FormatHTML renders the gap list as a minimal styled HTML document.
func FormatHTML(gaps []model.GapRecord) (string, error) {
	rows := make([]htmlRow, 0, len(gaps))
	for _, gap := range gaps {
		rows = append(rows, htmlRow{
			Resource: gap.ResourceID,
			Type:     string(gap.ResourceType),
			Missing:  strings.Join(gap.Missing, ", "),
		})
	}

	var b strings.Builder
	if err := htmlReport.Execute(&b, struct{ Rows []htmlRow }{rows}); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return b.String(), nil
}
