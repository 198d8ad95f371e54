package viewmodel

import (
	"fmt"
	"github.com/carldea/cognitive-sub001/property"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
)

// Simple is the plain view model without validation: binding plus save and
// reset. Create one with NewSimple.
type Simple struct {
	logger *zap.Logger
	// propertyOrder holds property names in registration order.
	propertyOrder []string
	// properties is the observable, GUI-bound property-value layer.
	properties map[string]*property.Property
	// modelValues is the committed model-value layer. Mutated only through Save
	// and initial registration.
	modelValues map[string]any
}

// NewSimple creates a new Simple view model with the given Options.
func NewSimple(options Options) *Simple {
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	return &Simple{
		logger:        options.Logger,
		propertyOrder: make([]string, 0),
		properties:    make(map[string]*property.Property),
		modelValues:   make(map[string]any),
	}
}

// AddProperty creates the property-value slot and the mirrored model-value
// slot for the given name, both holding the initial value. Adding an already
// present name does not overwrite anything.
func (vm *Simple) AddProperty(name string, initialValue any) {
	if _, ok := vm.properties[name]; ok {
		return
	}
	vm.properties[name] = property.New(name, initialValue)
	vm.modelValues[name] = initialValue
	vm.propertyOrder = append(vm.propertyOrder, name)
	vm.logger.Debug("added property", zap.String("property_name", name))
}

// Property returns the bindable property-value slot for the given name. A
// not-found error is returned for unregistered names.
func (vm *Simple) Property(name string) (*property.Property, error) {
	prop, ok := vm.properties[name]
	if !ok {
		return nil, meh.NewNotFoundErr(fmt.Sprintf("unknown property: %q", name), nil)
	}
	return prop, nil
}

// PropertyValue returns the current property-layer value for the given name.
func (vm *Simple) PropertyValue(name string) (any, error) {
	prop, err := vm.Property(name)
	if err != nil {
		return nil, meh.Wrap(err, "property", nil)
	}
	return prop.Value(), nil
}

// SetPropertyValue sets the property-layer value for the given name. Change
// listeners fire inline if the value differs from the current one. The model
// layer is not touched.
func (vm *Simple) SetPropertyValue(name string, val any) error {
	prop, err := vm.Property(name)
	if err != nil {
		return meh.Wrap(err, "property", nil)
	}
	prop.Set(val)
	return nil
}

// Value returns the last committed model-layer value for the given name: the
// safe value from registration or the last Save.
func (vm *Simple) Value(name string) (any, error) {
	val, ok := vm.modelValues[name]
	if !ok {
		return nil, meh.NewNotFoundErr(fmt.Sprintf("unknown property: %q", name), nil)
	}
	return val, nil
}

// PropertyNames returns all registered property names in registration order.
func (vm *Simple) PropertyNames() []string {
	names := make([]string, len(vm.propertyOrder))
	copy(names, vm.propertyOrder)
	return names
}

// Save copies every property value into the corresponding model-value slot,
// unconditionally.
func (vm *Simple) Save() error {
	for _, name := range vm.propertyOrder {
		vm.modelValues[name] = vm.properties[name].Value()
	}
	vm.logger.Debug("saved property values to model values", zap.Int("property_count", len(vm.propertyOrder)))
	return nil
}

// Reset copies every model value back into the property layer, discarding
// unsaved edits. Change listeners fire for properties whose value actually
// changes.
func (vm *Simple) Reset() {
	for _, name := range vm.propertyOrder {
		vm.properties[name].Set(vm.modelValues[name])
	}
	vm.logger.Debug("reset property values to model values", zap.Int("property_count", len(vm.propertyOrder)))
}

// DoOnChange registers the given action for all named properties. The action
// is invoked inline whenever any of them changes its value, never at
// registration time. Overlapping registrations are all invoked independently.
func (vm *Simple) DoOnChange(action func(), propertyNames ...string) error {
	props := make([]*property.Property, 0, len(propertyNames))
	for _, name := range propertyNames {
		prop, err := vm.Property(name)
		if err != nil {
			return meh.Wrap(err, "property for change listener", meh.Details{"property_name": name})
		}
		props = append(props, prop)
	}
	for _, prop := range props {
		prop.OnChange(func(_ any, _ any) {
			action()
		})
	}
	return nil
}
