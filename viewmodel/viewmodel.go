// Package viewmodel provides the property bag that holds a form's
// presentation state independently of its GUI controller: a transient
// property-value layer bound to widgets and a committed model-value layer,
// converging only through save and reset. Simple is the plain two-layer bag,
// Validation adds a composed validation manager with observable valid/invalid
// state.
//
// A view model instance is owned by exactly one logical actor, usually the UI
// event dispatcher. All mutation, validation and listener dispatch happen
// synchronously on the calling goroutine without internal locking. A listener
// that mutates another observed property causes reentrant dispatch; guarding
// against that is caller discipline.
package viewmodel

import (
	"github.com/carldea/cognitive-sub001/property"
	"go.uber.org/zap"
)

// Options for NewSimple and NewValidation.
type Options struct {
	// Logger for debug output. Defaults to a no-op logger.
	Logger *zap.Logger
}

// ViewModel is the surface shared by Simple and Validation that the view
// loader injects into controllers and the GUI-binding layer consumes.
type ViewModel interface {
	// AddProperty creates a property-value slot and a mirrored model-value slot
	// with the given initial value. Adding an already present name is a no-op.
	AddProperty(name string, initialValue any)
	// Property returns the bindable property-value slot for the given name.
	Property(name string) (*property.Property, error)
	// PropertyValue returns the current property-layer value for the given name.
	PropertyValue(name string) (any, error)
	// SetPropertyValue sets the property-layer value for the given name.
	SetPropertyValue(name string, val any) error
	// Value returns the last committed model-layer value for the given name.
	Value(name string) (any, error)
	// PropertyNames returns all registered property names in registration order.
	PropertyNames() []string
	// Save commits property values into the model layer.
	Save() error
	// Reset copies model values back into the property layer, discarding unsaved
	// edits.
	Reset()
	// DoOnChange registers an action that is invoked whenever any of the named
	// properties' value changes. It never runs at registration time.
	DoOnChange(action func(), propertyNames ...string) error
}
