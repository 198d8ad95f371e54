// Package validation provides the validation engine for view models: messages
// with severities, per-property validator chains with ordered multi-message
// results, a Manager that orchestrates full validation passes, and property
// identifiers. Validation outcomes are data, never errors. A view model
// composes a Manager when validation is required.
package validation

import (
	"fmt"
	"regexp"
)

// Severity of a Message.
type Severity string

const (
	// SeverityError marks a message that blocks saving.
	SeverityError Severity = "error"
	// SeverityWarn marks a message that is surfaced but does not block saving.
	SeverityWarn Severity = "warn"
	// SeverityInfo marks a purely informational message.
	SeverityInfo Severity = "info"
)

// CodeUnknown is the default error code for messages that carry no explicit
// one.
const CodeUnknown = "unknown"

// None is the sentinel for "no message". Function-style validators return it
// when the value satisfies the rule. It never appears in aggregate message
// lists.
var None = Message{}

// Message is one immutable validation outcome. Construct messages via
// NewError, NewWarn, NewInfo or the convenience methods on Result and treat
// them as values.
type Message struct {
	// PropertyName of the property the message refers to. The Manager stamps the
	// owning registration name if left empty.
	PropertyName string
	// Severity of the message.
	Severity Severity
	// Code identifies the violated rule. Defaults to CodeUnknown.
	Code string
	// Template is the message text. It may contain ${propertyName} tokens which
	// Interpolate replaces with registered friendly names.
	Template string
	// Cause optionally holds the underlying error.
	Cause error
}

// NewError creates an error Message for the given property name and template.
func NewError(propertyName string, template string) Message {
	return Message{
		PropertyName: propertyName,
		Severity:     SeverityError,
		Code:         CodeUnknown,
		Template:     template,
	}
}

// NewWarn creates a warn Message for the given property name and template.
func NewWarn(propertyName string, template string) Message {
	return Message{
		PropertyName: propertyName,
		Severity:     SeverityWarn,
		Code:         CodeUnknown,
		Template:     template,
	}
}

// NewInfo creates an info Message for the given property name and template.
func NewInfo(propertyName string, template string) Message {
	return Message{
		PropertyName: propertyName,
		Severity:     SeverityInfo,
		Code:         CodeUnknown,
		Template:     template,
	}
}

// WithCode returns a copy of the Message with the given error code.
func (message Message) WithCode(code string) Message {
	message.Code = code
	return message
}

// WithCause returns a copy of the Message with the given cause.
func (message Message) WithCause(cause error) Message {
	message.Cause = cause
	return message
}

// IsNone reports whether the Message is the None sentinel.
func (message Message) IsNone() bool {
	return message.Severity == ""
}

// FriendlyNameLookup resolves a property name to its human-readable friendly
// name. The second return value reports whether a friendly name is registered.
type FriendlyNameLookup func(propertyName string) (string, bool)

// propertyNameTokenRegex matches ${propertyName} tokens in message templates.
// Malformed tokens like unbalanced "${" simply do not match and pass through
// unchanged.
var propertyNameTokenRegex = regexp.MustCompile(`\$\{([^${}]+)\}`)

// Interpolate renders the message template by replacing every ${propertyName}
// token whose property name has a registered friendly name with that friendly
// name. Tokens without a registered friendly name are left verbatim. All
// tokens are collected in a single pass before substitution.
func (message Message) Interpolate(friendlyNameOf FriendlyNameLookup) string {
	if friendlyNameOf == nil {
		return message.Template
	}
	return propertyNameTokenRegex.ReplaceAllStringFunc(message.Template, func(token string) string {
		propertyName := token[len("${") : len(token)-len("}")]
		friendlyName, ok := friendlyNameOf(propertyName)
		if !ok || friendlyName == "" {
			return token
		}
		return friendlyName
	})
}

func (message Message) String() string {
	return fmt.Sprintf("[%s] %s: %s", message.Severity, message.PropertyName, message.Template)
}
