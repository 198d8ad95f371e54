package viewmodel

import (
	"fmt"
	"github.com/carldea/cognitive-sub001/property"
	"github.com/carldea/cognitive-sub001/validation"
	"github.com/lefinal/meh"
	"github.com/lefinal/meh/mehlog"
	"strings"
)

// Validation is a view model with a composed validation manager. On top of
// Simple it tracks observable valid/invalid state, gates Save on the absence
// of error messages and supports change-triggered re-validation. Create one
// with NewValidation.
type Validation struct {
	*Simple
	manager *validation.Manager
	// valid and invalid are recomputed after every Validate. Both start false:
	// an unvalidated view model is neither. Invalidate does not touch them, they
	// keep the last computed value until the next Validate.
	valid   *property.Property
	invalid *property.Property
}

// NewValidation creates a new Validation view model with the given Options.
func NewValidation(options Options) *Validation {
	return &Validation{
		Simple:  NewSimple(options),
		manager: validation.NewManager(),
		valid:   property.New("valid", false),
		invalid: property.New("invalid", false),
	}
}

// Manager returns the composed validation manager.
func (vm *Validation) Manager() *validation.Manager {
	return vm.manager
}

// AddValidator registers the given validator for the property with the given
// name, appending to its chain, and applies the friendly name with
// first-meaningful-name-wins semantics. It returns the view model itself for
// chained configuration.
func (vm *Validation) AddValidator(name string, friendlyName string, validator validation.Validator) *Validation {
	vm.manager.CreateFieldValidator(name, friendlyName, validator)
	return vm
}

// AddGlobalValidator registers the given validator under a synthetic property
// name for whole-form or cross-field rules. It returns the view model itself
// for chained configuration.
func (vm *Validation) AddGlobalValidator(code string, name string, messageTemplate string, validator validation.Validator) *Validation {
	vm.manager.CreateGlobalValidator(code, name, messageTemplate, validator)
	return vm
}

// Validate runs a full validation pass over all registered validators and
// recomputes the valid/invalid flags: invalid iff the aggregate message list
// contains at least one error message. It returns the aggregate message list.
func (vm *Validation) Validate() ([]validation.Message, error) {
	messages, err := vm.manager.Validate(vm)
	if err != nil {
		return nil, meh.Wrap(err, "validate", nil)
	}
	hasErrors := vm.manager.HasErrorMsgs()
	vm.invalid.Set(hasErrors)
	vm.valid.Set(!hasErrors)
	return messages, nil
}

// Save validates first and commits property values into the model layer only
// if no error-severity messages exist afterwards. With error messages present,
// model values are left untouched and Save returns without committing; callers
// detect the no-op via HasErrorMsgs.
func (vm *Validation) Save() error {
	_, err := vm.Validate()
	if err != nil {
		return meh.Wrap(err, "validate before save", nil)
	}
	if vm.manager.HasErrorMsgs() {
		vm.logger.Debug("save skipped due to validation error messages")
		return nil
	}
	return vm.Simple.Save()
}

// ValidateOnChange registers that every change of the named property's value
// runs a full validation pass, re-evaluating all registered validators. The
// callback receives only the resulting messages whose property name equals the
// given name; messages for other properties are computed but not delivered to
// this callback.
func (vm *Validation) ValidateOnChange(name string, callback func(messages []validation.Message)) error {
	prop, err := vm.Property(name)
	if err != nil {
		return meh.Wrap(err, "property for validate-on-change", meh.Details{"property_name": name})
	}
	prop.OnChange(func(_ any, _ any) {
		messages, err := vm.Validate()
		if err != nil {
			mehlog.Log(vm.logger, meh.Wrap(err, "validate on change", meh.Details{"property_name": name}))
			return
		}
		scoped := make([]validation.Message, 0)
		for _, message := range messages {
			if message.PropertyName == name {
				scoped = append(scoped, message)
			}
		}
		callback(scoped)
	})
	return nil
}

// OnValid registers an action that is invoked whenever the valid flag
// transitions to true after a validation pass.
func (vm *Validation) OnValid(action func()) {
	vm.valid.OnChange(func(_ any, newValue any) {
		if property.BoolOf(newValue) {
			action()
		}
	})
}

// OnInvalid registers an action that is invoked whenever the invalid flag
// transitions to true after a validation pass.
func (vm *Validation) OnInvalid(action func()) {
	vm.invalid.OnChange(func(_ any, newValue any) {
		if property.BoolOf(newValue) {
			action()
		}
	})
}

// Valid reports the last computed valid flag.
func (vm *Validation) Valid() bool {
	return vm.valid.AsBool()
}

// Invalid reports the last computed invalid flag.
func (vm *Validation) Invalid() bool {
	return vm.invalid.AsBool()
}

// ValidProperty returns the observable valid flag for direct GUI binding, for
// example of widget enablement.
func (vm *Validation) ValidProperty() *property.Property {
	return vm.valid
}

// InvalidProperty returns the observable invalid flag for direct GUI binding.
func (vm *Validation) InvalidProperty() *property.Property {
	return vm.invalid
}

// ValidationMessages returns the aggregate message list of the last validation
// pass.
func (vm *Validation) ValidationMessages() []validation.Message {
	return vm.manager.Messages()
}

// Invalidate clears the aggregate message list without invoking any validator.
// The valid/invalid flags keep their last computed value until the next
// Validate.
func (vm *Validation) Invalidate() {
	vm.manager.Invalidate()
}

// HasErrorMsgs reports whether the last validation pass produced at least one
// error message.
func (vm *Validation) HasErrorMsgs() bool {
	return vm.manager.HasErrorMsgs()
}

// HasNoErrorMsgs is the negation of HasErrorMsgs.
func (vm *Validation) HasNoErrorMsgs() bool {
	return vm.manager.HasNoErrorMsgs()
}

// HasWarningMsgs reports whether the last validation pass produced at least
// one warn message.
func (vm *Validation) HasWarningMsgs() bool {
	return vm.manager.HasWarningMsgs()
}

// HasNoWarningMsgs is the negation of HasWarningMsgs.
func (vm *Validation) HasNoWarningMsgs() bool {
	return vm.manager.HasNoWarningMsgs()
}

// HasInfoMsgs reports whether the last validation pass produced at least one
// info message.
func (vm *Validation) HasInfoMsgs() bool {
	return vm.manager.HasInfoMsgs()
}

// HasNoInfoMsgs is the negation of HasInfoMsgs.
func (vm *Validation) HasNoInfoMsgs() bool {
	return vm.manager.HasNoInfoMsgs()
}

// FriendlyName returns the registered friendly name for the given property
// name.
func (vm *Validation) FriendlyName(name string) (string, bool) {
	return vm.manager.FriendlyName(name)
}

// Interpolate renders the given message's template against the registered
// friendly names.
func (vm *Validation) Interpolate(message validation.Message) string {
	return message.Interpolate(vm.manager.FriendlyNameLookup())
}

// DebugPropertyMessage returns a diagnostic string combining the current
// property value, the model value and all messages for the given name. It is
// meant for testing and debugging, not as a contract surface.
func (vm *Validation) DebugPropertyMessage(name string) string {
	propertyValue, err := vm.PropertyValue(name)
	if err != nil {
		return fmt.Sprintf("%s: unknown property", name)
	}
	modelValue, _ := vm.Value(name)
	messageStrs := make([]string, 0)
	for _, message := range vm.manager.Messages() {
		if message.PropertyName == name {
			messageStrs = append(messageStrs, fmt.Sprintf("[%s] %s", message.Severity, vm.Interpolate(message)))
		}
	}
	return fmt.Sprintf("%s: property=%v, model=%v, messages=[%s]",
		name, propertyValue, modelValue, strings.Join(messageStrs, "; "))
}
