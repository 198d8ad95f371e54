package viewfile

import (
	"encoding/json"
	"fmt"
	"github.com/lefinal/meh"
)

// Unmarshaller is a generic type alias for a function that unmarshals JSON
// data into a value of type S.
type Unmarshaller[S any] func(data []byte) (S, error)

// UnmarshallerFn is a higher-order function that creates a JSON Unmarshaller
// function for a specific type.
func UnmarshallerFn[T any, S any](constructorFn func(t T) S) Unmarshaller[S] {
	return func(data []byte) (S, error) {
		var t T
		err := json.Unmarshal(data, &t)
		return constructorFn(t), err
	}
}

// ParseBasedOnType parses JSON data based on the given type field. It accepts
// the JSON data, a mapping of type name to Unmarshaller, and the type field
// name. It returns the parsed object of the corresponding type. An unsupported
// type is a fatal parse error, never silently skipped.
func ParseBasedOnType[T ~string, S any](data []byte, typeMapping map[T]Unmarshaller[S], typeFieldName string) (S, error) {
	var s S
	var raw map[string]any
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return s, meh.NewBadInputErrFromErr(err, "unmarshal type base", meh.Details{"tried_to_unmarshal_type_base": string(data)})
	}
	typeNameRaw := raw[typeFieldName]
	if typeNameRaw == nil || typeNameRaw == "" {
		return s, meh.NewBadInputErr("missing type name", meh.Details{"type_field_name": typeFieldName})
	}
	typeNameStr, ok := typeNameRaw.(string)
	if !ok {
		return s, meh.NewBadInputErr(fmt.Sprintf("type name has unexpected data type: %T", typeNameRaw),
			meh.Details{"type_name_was": typeNameRaw})
	}
	typeName := T(typeNameStr)
	unmarshaller, ok := typeMapping[typeName]
	if !ok {
		return s, meh.NewBadInputErr(fmt.Sprintf("unsupported type: %v", typeName), nil)
	}
	parsed, err := unmarshaller(data)
	if err != nil {
		return s, meh.NewBadInputErrFromErr(err, "parse actual type", nil)
	}
	return parsed, nil
}

// ParseSliceBasedOnType parses a JSON list based on the given type field name,
// using the provided type mapping to create the corresponding values. Order is
// preserved.
func ParseSliceBasedOnType[T ~string, S any](data []byte, typeMapping map[T]Unmarshaller[S], typeFieldName string) ([]S, error) {
	var rawJSONList []json.RawMessage
	err := json.Unmarshal(data, &rawJSONList)
	if err != nil {
		return nil, meh.NewBadInputErrFromErr(err, "unmarshal raw json list", nil)
	}
	list := make([]S, 0, len(rawJSONList))
	for i, rawJSON := range rawJSONList {
		parsed, err := ParseBasedOnType(rawJSON, typeMapping, typeFieldName)
		if err != nil {
			return nil, meh.Wrap(err, fmt.Sprintf("parse element %d based on type", i), nil)
		}
		list = append(list, parsed)
	}
	return list, nil
}
