package validation

import (
	"fmt"
	"github.com/carldea/cognitive-sub001/property"
	"github.com/lefinal/meh"
)

// ViewModel is the read surface a validator sees of the owning view model. It
// allows cross-field rules to inspect other property values as well as the
// last committed model values.
type ViewModel interface {
	// PropertyValue returns the current (transient) value of the property with
	// the given name.
	PropertyValue(name string) (any, error)
	// Value returns the last committed model value of the property with the
	// given name.
	Value(name string) (any, error)
}

// Kind of a Validator. The set of kinds is closed. The Manager dispatches
// every validator invocation by its concrete kind and treats unrecognized
// kinds as fatal configuration errors.
type Kind string

const (
	KindBool    Kind = "bool"
	KindString  Kind = "string"
	KindInt     Kind = "int"
	KindInt64   Kind = "int64"
	KindFloat32 Kind = "float32"
	KindFloat64 Kind = "float64"
	KindObject  Kind = "object"
	KindList    Kind = "list"
	KindSet     Kind = "set"
	KindCustom  Kind = "custom"
)

// Validator is a unit of validation logic bound to one property or to a
// synthetic global rule. Validators come in two styles: function style returns
// at most one Message (None for a satisfied rule), consumer style appends any
// number of messages to a Result. Each kind carries its own value extraction
// so the property value reaches the validator body already converted.
type Validator interface {
	Kind() Kind
}

// BoolFunc is a function-style validator over bool values.
type BoolFunc func(val bool, vm ViewModel) Message

// Kind of BoolFunc.
func (BoolFunc) Kind() Kind { return KindBool }

// StringFunc is a function-style validator over string values.
type StringFunc func(val string, vm ViewModel) Message

// Kind of StringFunc.
func (StringFunc) Kind() Kind { return KindString }

// IntFunc is a function-style validator over int values.
type IntFunc func(val int, vm ViewModel) Message

// Kind of IntFunc.
func (IntFunc) Kind() Kind { return KindInt }

// Int64Func is a function-style validator over int64 values.
type Int64Func func(val int64, vm ViewModel) Message

// Kind of Int64Func.
func (Int64Func) Kind() Kind { return KindInt64 }

// Float32Func is a function-style validator over float32 values.
type Float32Func func(val float32, vm ViewModel) Message

// Kind of Float32Func.
func (Float32Func) Kind() Kind { return KindFloat32 }

// Float64Func is a function-style validator over float64 values.
type Float64Func func(val float64, vm ViewModel) Message

// Kind of Float64Func.
func (Float64Func) Kind() Kind { return KindFloat64 }

// ObjectFunc is a function-style validator over untyped values.
type ObjectFunc func(val any, vm ViewModel) Message

// Kind of ObjectFunc.
func (ObjectFunc) Kind() Kind { return KindObject }

// ListFunc is a function-style validator over list values.
type ListFunc func(val []any, vm ViewModel) Message

// Kind of ListFunc.
func (ListFunc) Kind() Kind { return KindList }

// SetFunc is a function-style validator over set values.
type SetFunc func(val map[any]struct{}, vm ViewModel) Message

// Kind of SetFunc.
func (SetFunc) Kind() Kind { return KindSet }

// CustomFunc is a function-style validator over untyped values for
// user-defined rules, including global cross-field ones.
type CustomFunc func(val any, vm ViewModel) Message

// Kind of CustomFunc.
func (CustomFunc) Kind() Kind { return KindCustom }

// BoolConsumer is a consumer-style validator over bool values.
type BoolConsumer func(val bool, result *Result, vm ViewModel)

// Kind of BoolConsumer.
func (BoolConsumer) Kind() Kind { return KindBool }

// StringConsumer is a consumer-style validator over string values.
type StringConsumer func(val string, result *Result, vm ViewModel)

// Kind of StringConsumer.
func (StringConsumer) Kind() Kind { return KindString }

// IntConsumer is a consumer-style validator over int values.
type IntConsumer func(val int, result *Result, vm ViewModel)

// Kind of IntConsumer.
func (IntConsumer) Kind() Kind { return KindInt }

// Int64Consumer is a consumer-style validator over int64 values.
type Int64Consumer func(val int64, result *Result, vm ViewModel)

// Kind of Int64Consumer.
func (Int64Consumer) Kind() Kind { return KindInt64 }

// Float32Consumer is a consumer-style validator over float32 values.
type Float32Consumer func(val float32, result *Result, vm ViewModel)

// Kind of Float32Consumer.
func (Float32Consumer) Kind() Kind { return KindFloat32 }

// Float64Consumer is a consumer-style validator over float64 values.
type Float64Consumer func(val float64, result *Result, vm ViewModel)

// Kind of Float64Consumer.
func (Float64Consumer) Kind() Kind { return KindFloat64 }

// ObjectConsumer is a consumer-style validator over untyped values.
type ObjectConsumer func(val any, result *Result, vm ViewModel)

// Kind of ObjectConsumer.
func (ObjectConsumer) Kind() Kind { return KindObject }

// ListConsumer is a consumer-style validator over list values.
type ListConsumer func(val []any, result *Result, vm ViewModel)

// Kind of ListConsumer.
func (ListConsumer) Kind() Kind { return KindList }

// SetConsumer is a consumer-style validator over set values.
type SetConsumer func(val map[any]struct{}, result *Result, vm ViewModel)

// Kind of SetConsumer.
func (SetConsumer) Kind() Kind { return KindSet }

// CustomConsumer is a consumer-style validator over untyped values for
// user-defined rules.
type CustomConsumer func(val any, result *Result, vm ViewModel)

// Kind of CustomConsumer.
func (CustomConsumer) Kind() Kind { return KindCustom }

// apply invokes the given validator on the given raw property value and
// appends produced messages to the Result. The dispatch is exhaustive over the
// closed set of validator kinds. A validator outside that set is a fatal
// configuration error. Faults raised by the validator body itself are not
// caught and propagate to the caller of the validation pass.
func apply(validator Validator, val any, result *Result, vm ViewModel) error {
	switch v := validator.(type) {
	case BoolFunc:
		result.Add(v(property.BoolOf(val), vm))
	case StringFunc:
		result.Add(v(property.StringOf(val), vm))
	case IntFunc:
		result.Add(v(property.IntOf(val), vm))
	case Int64Func:
		result.Add(v(property.Int64Of(val), vm))
	case Float32Func:
		result.Add(v(property.Float32Of(val), vm))
	case Float64Func:
		result.Add(v(property.Float64Of(val), vm))
	case ObjectFunc:
		result.Add(v(val, vm))
	case ListFunc:
		result.Add(v(property.ListOf(val), vm))
	case SetFunc:
		result.Add(v(property.SetOf(val), vm))
	case CustomFunc:
		result.Add(v(val, vm))
	case BoolConsumer:
		v(property.BoolOf(val), result, vm)
	case StringConsumer:
		v(property.StringOf(val), result, vm)
	case IntConsumer:
		v(property.IntOf(val), result, vm)
	case Int64Consumer:
		v(property.Int64Of(val), result, vm)
	case Float32Consumer:
		v(property.Float32Of(val), result, vm)
	case Float64Consumer:
		v(property.Float64Of(val), result, vm)
	case ObjectConsumer:
		v(val, result, vm)
	case ListConsumer:
		v(property.ListOf(val), result, vm)
	case SetConsumer:
		v(property.SetOf(val), result, vm)
	case CustomConsumer:
		v(val, result, vm)
	default:
		return meh.NewInternalErr(fmt.Sprintf("unrecognized validator kind: %T", validator), meh.Details{
			"property_name": result.PropertyName(),
		})
	}
	return nil
}
