package model

// QC statuses
const (
	QCPass    = "pass"
	QCWarning = "warning"
	QCFail    = "fail"
)

// QC severities
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// QCCheck is the outcome of one evaluated rule.
type QCCheck struct {
	CheckName string `json:"check_name"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
}

// QCResult is the aggregate verdict over all checks. FixesApplied is
// reserved for a future auto-remediation layer and is always empty here.
type QCResult struct {
	OverallStatus string    `json:"overall_status"`
	Checks        []QCCheck `json:"checks"`
	FixesApplied  []string  `json:"fixes_applied"`
}
