// Alarmgap - CloudWatch Alarm Gap Auditor
// Collect. Match. Report.
package main

func main() {
	Execute()
}
