package validation

import (
	"fmt"
	"github.com/lefinal/meh"
)

// registration holds the ordered validator chain for one registered property
// name along with message defaults for global rules.
type registration struct {
	// global is set for rules registered via Manager.CreateGlobalValidator. Their
	// property name is synthetic and not required to be bound to a property
	// value.
	global bool
	// code is the default error code applied to produced messages of a global
	// registration.
	code string
	// template is the default message template applied to produced messages of a
	// global registration.
	template string
	// validators in registration order.
	validators []Validator
}

// Manager owns the property-to-validators registry and the friendly-name
// registry of one view model. It orchestrates full validation passes and keeps
// the consolidated message list of the last pass. A Manager is bound to a
// single logical actor, just like the view model composing it.
type Manager struct {
	// registrationOrder holds registered property names in registration order.
	// Validation iterates in this order.
	registrationOrder []string
	registrations     map[string]*registration
	friendlyNames     map[string]string
	// messages is the aggregate message list of the last validation pass.
	messages []Message
}

// NewManager creates a new Manager that is ready to use.
func NewManager() *Manager {
	return &Manager{
		registrationOrder: make([]string, 0),
		registrations:     make(map[string]*registration),
		friendlyNames:     make(map[string]string),
		messages:          make([]Message, 0),
	}
}

func (mgr *Manager) registrationFor(name string) *registration {
	reg, ok := mgr.registrations[name]
	if !ok {
		reg = &registration{validators: make([]Validator, 0)}
		mgr.registrations[name] = reg
		mgr.registrationOrder = append(mgr.registrationOrder, name)
	}
	return reg
}

// CreateFieldValidator registers the given validator for the property with the
// given name, appending it to the name's existing chain. The friendly name is
// applied with SetFriendlyName semantics: the first meaningful name wins.
func (mgr *Manager) CreateFieldValidator(name string, friendlyName string, validator Validator) {
	reg := mgr.registrationFor(name)
	reg.validators = append(reg.validators, validator)
	mgr.SetFriendlyName(name, friendlyName)
}

// CreateGlobalValidator registers the given validator under a synthetic
// property name that is not required to be bound to a property value. Global
// validators serve whole-form or cross-field rules and are invoked with the
// void value. The given code and message template are applied as defaults to
// every produced message that carries no explicit ones.
func (mgr *Manager) CreateGlobalValidator(code string, name string, messageTemplate string, validator Validator) {
	reg := mgr.registrationFor(name)
	reg.global = true
	if reg.code == "" {
		reg.code = code
	}
	if reg.template == "" {
		reg.template = messageTemplate
	}
	reg.validators = append(reg.validators, validator)
}

// SetFriendlyName registers the friendly name for the given property name. A
// blank friendly name never overwrites an existing non-blank one.
func (mgr *Manager) SetFriendlyName(name string, friendlyName string) {
	if friendlyName == "" {
		return
	}
	if _, ok := mgr.friendlyNames[name]; ok {
		return
	}
	mgr.friendlyNames[name] = friendlyName
}

// FriendlyName returns the registered friendly name for the given property
// name. The second return value reports whether one is registered.
func (mgr *Manager) FriendlyName(name string) (string, bool) {
	friendlyName, ok := mgr.friendlyNames[name]
	return friendlyName, ok
}

// FriendlyNameLookup returns a FriendlyNameLookup over the Manager's
// friendly-name registry, for use with Message.Interpolate.
func (mgr *Manager) FriendlyNameLookup() FriendlyNameLookup {
	return mgr.FriendlyName
}

// Validate clears the prior aggregate result and runs every registered
// validator chain against the given view model, property names in registration
// order, validators per name in registration order. Field validators see the
// current property value, global validators the void value. All produced
// non-sentinel messages form the new aggregate message list, which is
// returned.
//
// Validator faults are not caught. An unrecognized validator kind or a field
// registration without a bound property is a configuration error and aborts
// the pass.
func (mgr *Manager) Validate(vm ViewModel) ([]Message, error) {
	mgr.messages = make([]Message, 0)
	for _, name := range mgr.registrationOrder {
		reg := mgr.registrations[name]
		var val any
		if !reg.global {
			var err error
			val, err = vm.PropertyValue(name)
			if err != nil {
				return nil, meh.Wrap(err, "property value for field validator", meh.Details{"property_name": name})
			}
		}
		result := NewResult(name)
		for validatorNum, validator := range reg.validators {
			err := apply(validator, val, result, vm)
			if err != nil {
				return nil, meh.Wrap(err, fmt.Sprintf("apply validator %d for %q", validatorNum, name), nil)
			}
		}
		messages := result.Messages()
		if reg.global {
			for i, message := range messages {
				if message.Code == CodeUnknown && reg.code != "" {
					messages[i].Code = reg.code
				}
				if message.Template == "" && reg.template != "" {
					messages[i].Template = reg.template
				}
			}
		}
		mgr.messages = append(mgr.messages, messages...)
	}
	return mgr.messages, nil
}

// Invalidate clears the aggregate message list without running any validator.
// It is used to reset UI state before a fresh interaction cycle.
func (mgr *Manager) Invalidate() {
	mgr.messages = make([]Message, 0)
}

// Messages returns the aggregate message list of the last validation pass.
func (mgr *Manager) Messages() []Message {
	return mgr.messages
}

func (mgr *Manager) hasSeverity(severity Severity) bool {
	for _, message := range mgr.messages {
		if message.Severity == severity {
			return true
		}
	}
	return false
}

// HasErrorMsgs reports whether the aggregate message list contains at least
// one error message.
func (mgr *Manager) HasErrorMsgs() bool {
	return mgr.hasSeverity(SeverityError)
}

// HasNoErrorMsgs is the negation of HasErrorMsgs.
func (mgr *Manager) HasNoErrorMsgs() bool {
	return !mgr.HasErrorMsgs()
}

// HasWarningMsgs reports whether the aggregate message list contains at least
// one warn message.
func (mgr *Manager) HasWarningMsgs() bool {
	return mgr.hasSeverity(SeverityWarn)
}

// HasNoWarningMsgs is the negation of HasWarningMsgs.
func (mgr *Manager) HasNoWarningMsgs() bool {
	return !mgr.HasWarningMsgs()
}

// HasInfoMsgs reports whether the aggregate message list contains at least one
// info message.
func (mgr *Manager) HasInfoMsgs() bool {
	return mgr.hasSeverity(SeverityInfo)
}

// HasNoInfoMsgs is the negation of HasInfoMsgs.
func (mgr *Manager) HasNoInfoMsgs() bool {
	return !mgr.HasInfoMsgs()
}
