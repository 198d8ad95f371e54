// Package fieldassert provides structural validation for parsed definition
// files. It is distinct from the runtime validation engine: fieldassert checks
// that a form definition itself is well-formed before any view model is built
// from it. A Report collects warnings and errors per field path, assertions
// are composed per field.
package fieldassert

import (
	"cmp"
	"fmt"
	"github.com/lefinal/nulls"
	"regexp"
)

// Assertion returns a non-empty error message if the given value does not
// satisfy the requirements.
type Assertion[T any] func(val T) string

// AssertNotEmpty is an Assertion for the value not being equal to its empty
// value.
func AssertNotEmpty[T comparable]() Assertion[T] {
	return func(val T) string {
		var empty T
		if val == empty {
			return "required"
		}
		return ""
	}
}

// AssertOneOf is an Assertion for the value being one of the allowed ones.
func AssertOneOf[T comparable](allowed ...T) Assertion[T] {
	return func(val T) string {
		for _, allowedVal := range allowed {
			if val == allowedVal {
				return ""
			}
		}
		return fmt.Sprintf("must be one of %v", allowed)
	}
}

// AssertRegexp is an Assertion for the value being a compilable regular
// expression.
func AssertRegexp() Assertion[string] {
	return func(val string) string {
		_, err := regexp.Compile(val)
		if err != nil {
			return err.Error()
		}
		return ""
	}
}

// AssertGreaterEq is an Assertion that checks whether the given value is
// greater or equal to the provided limit.
func AssertGreaterEq[T cmp.Ordered](lower T) Assertion[T] {
	return func(val T) string {
		if val >= lower {
			return ""
		}
		return fmt.Sprintf("should be greater or equal %v", lower)
	}
}

// AssertLessEq is an Assertion that checks whether the given value is less or
// equal to the provided limit.
func AssertLessEq[T cmp.Ordered](upper T) Assertion[T] {
	return func(val T) string {
		if val <= upper {
			return ""
		}
		return fmt.Sprintf("should be less or equal %v", upper)
	}
}

// AssertIfOptionalStringSet checks the given Assertion-list if the value is
// set.
func AssertIfOptionalStringSet(assertions ...Assertion[string]) Assertion[nulls.String] {
	return func(val nulls.String) string {
		if len(assertions) == 0 {
			return "internal error: no assertions"
		}
		if !val.Valid {
			return ""
		}
		for _, assertion := range assertions {
			errMessage := assertion(val.String)
			if errMessage != "" {
				return errMessage
			}
		}
		return ""
	}
}

// ForField checks the given Assertion-list on the provided value and reports
// the first encountered error, if any, to the Reporter.
func ForField[T any](reporter *Reporter, path *Path, val T, assertion Assertion[T], moreAssertions ...Assertion[T]) {
	assertions := append([]Assertion[T]{assertion}, moreAssertions...)
	reporter.NextField(path, val)
	for _, assertion := range assertions {
		errMessage := assertion(val)
		if errMessage != "" {
			reporter.Error(errMessage)
			return
		}
	}
}
