package viewfile

import (
	"github.com/carldea/cognitive-sub001/fieldassert"
	"github.com/lefinal/meh"
)

// RuleType discriminates declarative validation rules in form definitions.
type RuleType string

const (
	// RuleTypeRequired for RuleRequired.
	RuleTypeRequired RuleType = "required"
	// RuleTypeMinLength for RuleMinLength.
	RuleTypeMinLength RuleType = "min-length"
	// RuleTypeMaxLength for RuleMaxLength.
	RuleTypeMaxLength RuleType = "max-length"
	// RuleTypeRange for RuleRange.
	RuleTypeRange RuleType = "range"
	// RuleTypePattern for RulePattern.
	RuleTypePattern RuleType = "pattern"
)

// Rule is one declarative validation rule of a property definition. The form
// builder compiles rules into runtime validators.
type Rule interface {
	Type() RuleType
	Validate(path *fieldassert.Path) *fieldassert.Report
}

// Rules uses custom JSON unmarshalling logic for a list of Rule, discriminated
// by the "rule" field.
type Rules []Rule

func ruleConstructor[T Rule](t T) Rule {
	return t
}

// UnmarshalJSON parses JSON data into a Rules instance based on each element's
// rule-type field. Unsupported rule types fail the parse.
func (rules *Rules) UnmarshalJSON(data []byte) error {
	var err error
	*rules, err = ParseSliceBasedOnType[RuleType, Rule](data, map[RuleType]Unmarshaller[Rule]{
		RuleTypeRequired:  UnmarshallerFn[RuleRequired](ruleConstructor[RuleRequired]),
		RuleTypeMinLength: UnmarshallerFn[RuleMinLength](ruleConstructor[RuleMinLength]),
		RuleTypeMaxLength: UnmarshallerFn[RuleMaxLength](ruleConstructor[RuleMaxLength]),
		RuleTypeRange:     UnmarshallerFn[RuleRange](ruleConstructor[RuleRange]),
		RuleTypePattern:   UnmarshallerFn[RulePattern](ruleConstructor[RulePattern]),
	}, "rule")
	if err != nil {
		return meh.Wrap(err, "parse rule list based on type", nil)
	}
	return nil
}

// RuleRequired requires the property value to be non-empty.
type RuleRequired struct{}

// Type of RuleRequired.
func (rule RuleRequired) Type() RuleType {
	return RuleTypeRequired
}

// Validate the options.
func (rule RuleRequired) Validate(_ *fieldassert.Path) *fieldassert.Report {
	return fieldassert.NewReport()
}

// RuleMinLength requires a string property value to have at least Min
// characters.
type RuleMinLength struct {
	Min int `json:"min"`
}

// Type of RuleMinLength.
func (rule RuleMinLength) Type() RuleType {
	return RuleTypeMinLength
}

// Validate the options.
func (rule RuleMinLength) Validate(path *fieldassert.Path) *fieldassert.Report {
	reporter := fieldassert.NewReporter()
	fieldassert.ForField(reporter, path.Child("min"), rule.Min,
		fieldassert.AssertGreaterEq(0))
	return reporter.Report()
}

// RuleMaxLength requires a string property value to have at most Max
// characters.
type RuleMaxLength struct {
	Max int `json:"max"`
}

// Type of RuleMaxLength.
func (rule RuleMaxLength) Type() RuleType {
	return RuleTypeMaxLength
}

// Validate the options.
func (rule RuleMaxLength) Validate(path *fieldassert.Path) *fieldassert.Report {
	reporter := fieldassert.NewReporter()
	fieldassert.ForField(reporter, path.Child("max"), rule.Max,
		fieldassert.AssertGreaterEq(0))
	return reporter.Report()
}

// RuleRange requires a numeric property value to lie in [Min, Max].
type RuleRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Type of RuleRange.
func (rule RuleRange) Type() RuleType {
	return RuleTypeRange
}

// Validate the options.
func (rule RuleRange) Validate(path *fieldassert.Path) *fieldassert.Report {
	reporter := fieldassert.NewReporter()
	fieldassert.ForField(reporter, path.Child("max"), rule.Max,
		fieldassert.AssertGreaterEq(rule.Min))
	return reporter.Report()
}

// RulePattern requires a string property value to match the regular
// expression Pattern.
type RulePattern struct {
	Pattern string `json:"pattern"`
}

// Type of RulePattern.
func (rule RulePattern) Type() RuleType {
	return RuleTypePattern
}

// Validate the options.
func (rule RulePattern) Validate(path *fieldassert.Path) *fieldassert.Report {
	reporter := fieldassert.NewReporter()
	fieldassert.ForField(reporter, path.Child("pattern"), rule.Pattern,
		fieldassert.AssertNotEmpty[string](),
		fieldassert.AssertRegexp())
	return reporter.Report()
}
