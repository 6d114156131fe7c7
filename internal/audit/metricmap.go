package audit

// metricNameMap maps a logical metric name to the real CloudWatch metric
// names that satisfy it. Handles AWS naming variants; fixed at build time.
var metricNameMap = map[string][]string{
	"CPUUtilization":    {"CPUUtilization"},
	"StatusCheckFailed": {"StatusCheckFailed"},
	"FreeStorageSpace":  {"FreeStorageSpace"},
	"HTTPCode_ELB_5XX":  {"HTTPCode_ELB_5XX_Count", "HTTPCode_ELB_5XX"},
	"Errors":            {"Errors"},
	"Throttles":         {"Throttles"},
}

// RealNames returns the acceptable CloudWatch metric names for a logical
// metric. An unknown logical name returns nil, which the detector treats
// as never satisfiable.
func RealNames(logical string) []string {
	return metricNameMap[logical]
}
