// Package viewfile provides parsing and structural validation of declarative
// form definitions. A form definition names the controller, the view-model
// slots to inject and the properties each view model carries, including
// declarative validation rules. It plays the role a declarative view file
// plays for a GUI toolkit's loader.
package viewfile

import (
	"encoding/json"
	"fmt"
	"github.com/carldea/cognitive-sub001/fieldassert"
	"github.com/lefinal/meh"
	"github.com/lefinal/nulls"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

// PropertyType of a property definition. It selects the validator kind and
// the typed access the GUI binds to.
type PropertyType string

const (
	PropertyTypeBool    PropertyType = "bool"
	PropertyTypeString  PropertyType = "string"
	PropertyTypeInt     PropertyType = "int"
	PropertyTypeInt64   PropertyType = "int64"
	PropertyTypeFloat32 PropertyType = "float32"
	PropertyTypeFloat64 PropertyType = "float64"
	PropertyTypeObject  PropertyType = "object"
	PropertyTypeList    PropertyType = "list"
	PropertyTypeSet     PropertyType = "set"
)

// propertyTypes holds all supported property types.
var propertyTypes = []PropertyType{
	PropertyTypeBool,
	PropertyTypeString,
	PropertyTypeInt,
	PropertyTypeInt64,
	PropertyTypeFloat32,
	PropertyTypeFloat64,
	PropertyTypeObject,
	PropertyTypeList,
	PropertyTypeSet,
}

// Form is a parsed form definition.
type Form struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Controller  string                  `json:"controller"`
	ViewModels  map[string]ViewModelDef `json:"viewModels"`
}

// ViewModelDef describes one named view-model slot of a form.
type ViewModelDef struct {
	Properties []PropertyDef `json:"properties"`
}

// PropertyDef describes one property of a view model: its stable name, its
// kind, an optional human-readable friendly name, the initial value and the
// declarative validation rules.
type PropertyDef struct {
	Name         string       `json:"name"`
	Type         PropertyType `json:"type"`
	FriendlyName nulls.String `json:"friendlyName"`
	Initial      any          `json:"initial"`
	Rules        Rules        `json:"rules"`
}

// Validate validates the Form and returns a Report.
func (form Form) Validate() *fieldassert.Report {
	reporter := fieldassert.NewReporter()
	path := fieldassert.NewPath("form")
	fieldassert.ForField(reporter, path.Child("name"), form.Name,
		fieldassert.AssertNotEmpty[string]())
	fieldassert.ForField(reporter, path.Child("controller"), form.Controller,
		fieldassert.AssertNotEmpty[string]())
	if len(form.ViewModels) == 0 {
		reporter.NextField(path.Child("viewModels"), form.ViewModels)
		reporter.Error("at least one view model required")
	}
	for viewModelName, viewModelDef := range form.ViewModels {
		reporter.AddReport(viewModelDef.Validate(path.Child("viewModels").Key(viewModelName)))
	}
	return reporter.Report()
}

// Validate validates the ViewModelDef and returns a Report.
func (def ViewModelDef) Validate(path *fieldassert.Path) *fieldassert.Report {
	reporter := fieldassert.NewReporter()
	seenNames := make(map[string]struct{})
	for propertyNum, propertyDef := range def.Properties {
		propertyPath := path.Child("properties").Index(propertyNum)
		reporter.AddReport(propertyDef.Validate(propertyPath))
		if _, ok := seenNames[propertyDef.Name]; ok {
			reporter.NextField(propertyPath.Child("name"), propertyDef.Name)
			reporter.Error("duplicate property name")
		}
		seenNames[propertyDef.Name] = struct{}{}
	}
	return reporter.Report()
}

// Validate validates the PropertyDef and returns a Report.
func (def PropertyDef) Validate(path *fieldassert.Path) *fieldassert.Report {
	reporter := fieldassert.NewReporter()
	fieldassert.ForField(reporter, path.Child("name"), def.Name,
		fieldassert.AssertNotEmpty[string]())
	if strings.Contains(def.Name, " ") {
		reporter.NextField(path.Child("name"), def.Name)
		reporter.Warn("spaces in property names may lead to confusion in message templates. consider renaming.")
	}
	fieldassert.ForField(reporter, path.Child("type"), def.Type,
		fieldassert.AssertNotEmpty[PropertyType](),
		fieldassert.AssertOneOf(propertyTypes...))
	fieldassert.ForField(reporter, path.Child("friendlyName"), def.FriendlyName,
		fieldassert.AssertIfOptionalStringSet(fieldassert.AssertNotEmpty[string]()))
	for ruleNum, rule := range def.Rules {
		reporter.AddReport(rule.Validate(path.Child("rules").Index(ruleNum)))
	}
	return reporter.Report()
}

// ParseForm parses a Form from raw JSON.
func ParseForm(rawForm json.RawMessage) (Form, error) {
	var form Form
	err := json.Unmarshal(rawForm, &form)
	if err != nil {
		return Form{}, meh.NewBadInputErrFromErr(err, "unmarshal form", nil)
	}
	return form, nil
}

func yamlToJSON(rawYAML []byte) (json.RawMessage, error) {
	var m map[string]any
	err := yaml.Unmarshal(rawYAML, &m)
	if err != nil {
		return nil, meh.NewBadInputErrFromErr(err, "unmarshal yaml to map", nil)
	}
	rawJSON, err := json.Marshal(m)
	if err != nil {
		return nil, meh.NewBadInputErrFromErr(err, "marshal json from map", nil)
	}
	return rawJSON, nil
}

// FromFile reads and parses a Form from the given YAML or JSON file.
func FromFile(filename string) (Form, error) {
	rawForm, err := os.ReadFile(filename)
	if err != nil {
		return Form{}, meh.NewBadInputErrFromErr(err, "read form file", nil)
	}
	var rawFormJSON json.RawMessage
	switch {
	case strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml"):
		rawFormJSON, err = yamlToJSON(rawForm)
		if err != nil {
			return Form{}, meh.Wrap(err, "yaml to json", nil)
		}
	case strings.HasSuffix(filename, ".json"):
		rawFormJSON = rawForm
	default:
		return Form{}, meh.NewBadInputErr(fmt.Sprintf("unsupported file extension: %s", filename), nil)
	}
	form, err := ParseForm(rawFormJSON)
	if err != nil {
		return Form{}, meh.Wrap(err, "parse form", nil)
	}
	return form, nil
}
