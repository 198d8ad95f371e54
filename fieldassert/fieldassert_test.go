package fieldassert

import (
	"fmt"
	"github.com/lefinal/nulls"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAssertNotEmpty(t *testing.T) {
	tests := []struct {
		val     string
		wantErr bool
	}{
		{val: "hello"},
		{val: " "},
		{val: "", wantErr: true},
	}

	for testNum, tt := range tests {
		t.Run(fmt.Sprintf("test#%d", testNum), func(t *testing.T) {
			errMessage := AssertNotEmpty[string]()(tt.val)
			if tt.wantErr {
				assert.NotEmpty(t, errMessage, "assertion should fail")
			} else {
				assert.Empty(t, errMessage, "assertion should not fail")
			}
		})
	}
}

func TestAssertOneOf(t *testing.T) {
	assertion := AssertOneOf("a", "b")
	assert.Empty(t, assertion("a"), "allowed value should pass")
	assert.NotEmpty(t, assertion("c"), "foreign value should fail")
}

func TestAssertRegexp(t *testing.T) {
	assert.Empty(t, AssertRegexp()("^[a-z]+$"), "valid expression should pass")
	assert.NotEmpty(t, AssertRegexp()("(unclosed"), "invalid expression should fail")
}

func TestAssertGreaterEq(t *testing.T) {
	assertion := AssertGreaterEq(3)
	assert.Empty(t, assertion(3), "equal value should pass")
	assert.Empty(t, assertion(4), "greater value should pass")
	assert.NotEmpty(t, assertion(2), "lesser value should fail")
}

func TestAssertLessEq(t *testing.T) {
	assertion := AssertLessEq(3)
	assert.Empty(t, assertion(3), "equal value should pass")
	assert.Empty(t, assertion(2), "lesser value should pass")
	assert.NotEmpty(t, assertion(4), "greater value should fail")
}

func TestAssertIfOptionalStringSet(t *testing.T) {
	assertion := AssertIfOptionalStringSet(AssertNotEmpty[string]())
	assert.Empty(t, assertion(nulls.String{}), "unset optional should pass")
	assert.Empty(t, assertion(nulls.NewString("hello")), "set valid optional should pass")
	assert.NotEmpty(t, assertion(nulls.NewString("")), "set invalid optional should fail")
}

func TestForField(t *testing.T) {
	reporter := NewReporter()
	ForField(reporter, NewPath("form", "name"), "", AssertNotEmpty[string]())
	ForField(reporter, NewPath("form", "controller"), "my-controller", AssertNotEmpty[string]())

	report := reporter.Report()
	assert.Len(t, report.Errors, 1, "should report first failing assertion only")
	assert.Equal(t, "form.name", report.Errors[0].Field, "should report field path")
	assert.True(t, report.HasErrors(), "report should have errors")
}

func TestForFieldFirstErrorWins(t *testing.T) {
	reporter := NewReporter()
	ForField(reporter, NewPath("form", "pattern"), "",
		AssertNotEmpty[string](), AssertRegexp())

	report := reporter.Report()
	assert.Len(t, report.Errors, 1, "should only report the first encountered error")
	assert.Equal(t, "required", report.Errors[0].Detail, "first assertion error should win")
}

func TestReporterWarnAndMerge(t *testing.T) {
	reporter := NewReporter()
	reporter.NextField(NewPath("form", "name"), "my value")
	reporter.Warn("a bit odd")

	other := NewReport()
	other.AddError(NewIssue(NewPath("form", "controller"), nil, "required"))
	reporter.AddReport(other)

	report := reporter.Report()
	assert.Len(t, report.Warnings, 1, "should hold warning")
	assert.Equal(t, "my value", report.Warnings[0].BadValue, "should hold field value")
	assert.Len(t, report.Errors, 1, "should hold merged error")
	assert.True(t, report.HasErrors(), "report should have errors")
}
