package validation

import (
	"github.com/gofrs/uuid"
	"github.com/lefinal/meh"
)

// Identifier is a typed property key. It maps a richer domain identity to the
// stable string property name that addresses value slots, validators, friendly
// names and change listeners within one view model. Implementations must keep
// the mapping bidirectional: the property name alone must suffice to recover
// the identity.
type Identifier interface {
	// PropertyName returns the string property name generated from the identity.
	PropertyName() string
}

// StringIdentifier is the trivial Identifier: the property name is the
// identity.
type StringIdentifier string

// PropertyName of the StringIdentifier.
func (identifier StringIdentifier) PropertyName() string {
	return string(identifier)
}

// UUIDIdentifier is an Identifier backed by a UUID, for properties addressed
// by content-addressed or entity ids rather than field names.
type UUIDIdentifier struct {
	id uuid.UUID
}

// NewUUIDIdentifier creates a UUIDIdentifier with a random UUID.
func NewUUIDIdentifier() (UUIDIdentifier, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return UUIDIdentifier{}, meh.NewInternalErrFromErr(err, "new uuid", nil)
	}
	return UUIDIdentifier{id: id}, nil
}

// UUIDIdentifierFrom creates a UUIDIdentifier from the given UUID.
func UUIDIdentifierFrom(id uuid.UUID) UUIDIdentifier {
	return UUIDIdentifier{id: id}
}

// ParseUUIDIdentifier recovers a UUIDIdentifier from a property name that was
// generated via UUIDIdentifier.PropertyName.
func ParseUUIDIdentifier(propertyName string) (UUIDIdentifier, error) {
	id, err := uuid.FromString(propertyName)
	if err != nil {
		return UUIDIdentifier{}, meh.NewBadInputErrFromErr(err, "parse uuid from property name", meh.Details{
			"property_name": propertyName,
		})
	}
	return UUIDIdentifier{id: id}, nil
}

// ID returns the backing UUID.
func (identifier UUIDIdentifier) ID() uuid.UUID {
	return identifier.id
}

// PropertyName of the UUIDIdentifier. It is the canonical string form of the
// backing UUID.
func (identifier UUIDIdentifier) PropertyName() string {
	return identifier.id.String()
}
