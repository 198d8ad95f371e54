package fieldassert

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Path represents the path from the definition root to a field.
type Path = field.Path

// NewPath creates a root Path with the given names.
func NewPath(name string, moreNames ...string) *Path {
	return field.NewPath(name, moreNames...)
}

// Issue is one structural finding for a field.
type Issue struct {
	Field    string
	BadValue any
	Detail   string
}

// NewIssue creates an Issue for the given field path, offending value and
// detail message.
func NewIssue(fieldPath *Path, badValue any, detail string) Issue {
	return Issue{
		Field:    fieldPath.String(),
		BadValue: badValue,
		Detail:   detail,
	}
}

// Report holds all structural findings of one definition, separated by
// severity.
type Report struct {
	Warnings []Issue
	Errors   []Issue
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		Warnings: make([]Issue, 0),
		Errors:   make([]Issue, 0),
	}
}

// AddWarning adds the given warning issue.
func (report *Report) AddWarning(issue Issue) {
	report.Warnings = append(report.Warnings, issue)
}

// AddError adds the given error issue.
func (report *Report) AddError(issue Issue) {
	report.Errors = append(report.Errors, issue)
}

// AddReport merges the given Report's issues.
func (report *Report) AddReport(otherReport *Report) {
	report.Warnings = append(report.Warnings, otherReport.Warnings...)
	report.Errors = append(report.Errors, otherReport.Errors...)
}

// HasErrors reports whether the Report contains at least one error issue.
func (report *Report) HasErrors() bool {
	return len(report.Errors) > 0
}

// Reporter is used as syntactic sugar in structural validation. Set the next
// field using NextField and then report findings with Error and Warn. The
// final Report is retrieved via Report.
type Reporter struct {
	fieldPath  *Path
	fieldValue any
	report     *Report
}

// NewReporter creates a new Reporter that is ready to use.
func NewReporter() *Reporter {
	return &Reporter{
		fieldPath:  nil,
		fieldValue: nil,
		report:     NewReport(),
	}
}

// NextField sets the field that calls to Error and Warn will use.
func (reporter *Reporter) NextField(fieldPath *Path, fieldValue any) {
	reporter.fieldPath = fieldPath
	reporter.fieldValue = fieldValue
}

// Warn reports the given warning for the last field that was set via
// NextField.
func (reporter *Reporter) Warn(warnMsg string) {
	reporter.report.AddWarning(NewIssue(reporter.fieldPath, reporter.fieldValue, warnMsg))
}

// Error reports the given error for the last field that was set via NextField.
func (reporter *Reporter) Error(errMsg string) {
	reporter.report.AddError(NewIssue(reporter.fieldPath, reporter.fieldValue, errMsg))
}

// AddReport merges the given Report.
func (reporter *Reporter) AddReport(otherReport *Report) {
	reporter.report.AddReport(otherReport)
}

// Report returns the final Report that contains all issues.
func (reporter *Reporter) Report() *Report {
	return reporter.report
}
