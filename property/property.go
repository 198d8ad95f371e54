// Package property provides observable value slots. A view model keeps one
// Property per registered property name and binds GUI widget state to it.
// Change listeners are dispatched inline and synchronously from Set, so all
// interaction with a Property is expected to happen from a single logical
// actor.
package property

import (
	"fmt"
	"reflect"
)

// ChangeListener is notified after a Property changed its value.
type ChangeListener func(oldValue any, newValue any)

// Property is a single observable value slot, addressed by its name within the
// owning view model. Create one with New.
type Property struct {
	name      string
	value     any
	listeners []ChangeListener
}

// New creates a new Property with the given name and initial value. Listeners
// are not notified of the initial value.
func New(name string, initialValue any) *Property {
	return &Property{
		name:      name,
		value:     initialValue,
		listeners: make([]ChangeListener, 0),
	}
}

// Name returns the property name.
func (prop *Property) Name() string {
	return prop.name
}

// Value returns the current value.
func (prop *Property) Value() any {
	return prop.value
}

// Set sets the value. Listeners registered via OnChange are invoked inline in
// registration order, but only if the new value differs from the current one.
func (prop *Property) Set(newValue any) {
	oldValue := prop.value
	if reflect.DeepEqual(oldValue, newValue) {
		return
	}
	prop.value = newValue
	for _, listener := range prop.listeners {
		listener(oldValue, newValue)
	}
}

// OnChange registers the given ChangeListener. It is never invoked at
// registration time, only for subsequent value changes. Multiple listeners are
// all invoked independently in registration order.
func (prop *Property) OnChange(listener ChangeListener) {
	prop.listeners = append(prop.listeners, listener)
}

// AsBool returns the current value as bool.
func (prop *Property) AsBool() bool {
	return BoolOf(prop.value)
}

// AsString returns the current value as string.
func (prop *Property) AsString() string {
	return StringOf(prop.value)
}

// AsInt returns the current value as int.
func (prop *Property) AsInt() int {
	return IntOf(prop.value)
}

// AsInt64 returns the current value as int64.
func (prop *Property) AsInt64() int64 {
	return Int64Of(prop.value)
}

// AsFloat32 returns the current value as float32.
func (prop *Property) AsFloat32() float32 {
	return Float32Of(prop.value)
}

// AsFloat64 returns the current value as float64.
func (prop *Property) AsFloat64() float64 {
	return Float64Of(prop.value)
}

// AsList returns the current value as list.
func (prop *Property) AsList() []any {
	return ListOf(prop.value)
}

// AsSet returns the current value as set.
func (prop *Property) AsSet() map[any]struct{} {
	return SetOf(prop.value)
}

func (prop *Property) String() string {
	return fmt.Sprintf("%s=%v", prop.name, prop.value)
}
