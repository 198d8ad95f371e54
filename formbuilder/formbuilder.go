// Package formbuilder turns parsed form definitions into ready validation
// view models: properties are registered with typed initial values and every
// declarative rule is compiled into a runtime validator.
package formbuilder

import (
	"fmt"
	"github.com/carldea/cognitive-sub001/logging"
	"github.com/carldea/cognitive-sub001/property"
	"github.com/carldea/cognitive-sub001/validation"
	"github.com/carldea/cognitive-sub001/viewfile"
	"github.com/carldea/cognitive-sub001/viewloader"
	"github.com/carldea/cognitive-sub001/viewmodel"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
	"regexp"
	"sort"
)

// NewDirectory builds a view-model Directory for the given form: one
// validation view model per declared view-model slot, registered under the
// slot's name.
func NewDirectory(logger *zap.Logger, form viewfile.Form) (*viewloader.Directory, error) {
	directory := viewloader.NewDirectory()
	for _, viewModelName := range sortedViewModelNames(form) {
		vm, err := NewViewModel(logger.Named("vm").Named(logging.WrapName(viewModelName)), form.ViewModels[viewModelName])
		if err != nil {
			return nil, meh.Wrap(err, fmt.Sprintf("new view model %q", viewModelName), nil)
		}
		err = directory.Register(viewModelName, vm)
		if err != nil {
			return nil, meh.Wrap(err, "register view model", meh.Details{"view_model_name": viewModelName})
		}
	}
	return directory, nil
}

func sortedViewModelNames(form viewfile.Form) []string {
	names := make([]string, 0, len(form.ViewModels))
	for name := range form.ViewModels {
		names = append(names, name)
	}
	// Map iteration order is random. Keep registration deterministic.
	sort.Strings(names)
	return names
}

// NewViewModel builds a validation view model from the given definition.
func NewViewModel(logger *zap.Logger, def viewfile.ViewModelDef) (*viewmodel.Validation, error) {
	vm := viewmodel.NewValidation(viewmodel.Options{Logger: logger})
	for _, propertyDef := range def.Properties {
		initialValue, err := initialValueFor(propertyDef)
		if err != nil {
			return nil, meh.Wrap(err, "initial value", meh.Details{"property_name": propertyDef.Name})
		}
		vm.AddProperty(propertyDef.Name, initialValue)
		vm.Manager().SetFriendlyName(propertyDef.Name, propertyDef.FriendlyName.String)
		for ruleNum, rule := range propertyDef.Rules {
			validator, err := compileRule(rule, propertyDef)
			if err != nil {
				return nil, meh.Wrap(err, fmt.Sprintf("compile rule %d for property %q", ruleNum, propertyDef.Name), nil)
			}
			vm.AddValidator(propertyDef.Name, propertyDef.FriendlyName.String, validator)
		}
	}
	return vm, nil
}

// initialValueFor converts the raw initial value of the definition to the
// declared property type. Parsed definitions carry all numbers as float64.
func initialValueFor(def viewfile.PropertyDef) (any, error) {
	if def.Initial == nil {
		return zeroValueFor(def.Type)
	}
	switch def.Type {
	case viewfile.PropertyTypeBool:
		return property.BoolOf(def.Initial), nil
	case viewfile.PropertyTypeString:
		return property.StringOf(def.Initial), nil
	case viewfile.PropertyTypeInt:
		return property.IntOf(def.Initial), nil
	case viewfile.PropertyTypeInt64:
		return property.Int64Of(def.Initial), nil
	case viewfile.PropertyTypeFloat32:
		return property.Float32Of(def.Initial), nil
	case viewfile.PropertyTypeFloat64:
		return property.Float64Of(def.Initial), nil
	case viewfile.PropertyTypeObject:
		return def.Initial, nil
	case viewfile.PropertyTypeList:
		return property.ListOf(def.Initial), nil
	case viewfile.PropertyTypeSet:
		set := make(map[any]struct{})
		for _, element := range property.ListOf(def.Initial) {
			set[element] = struct{}{}
		}
		return set, nil
	}
	return nil, meh.NewBadInputErr(fmt.Sprintf("unsupported property type: %v", def.Type), nil)
}

func zeroValueFor(propertyType viewfile.PropertyType) (any, error) {
	switch propertyType {
	case viewfile.PropertyTypeBool:
		return false, nil
	case viewfile.PropertyTypeString:
		return "", nil
	case viewfile.PropertyTypeInt:
		return 0, nil
	case viewfile.PropertyTypeInt64:
		return int64(0), nil
	case viewfile.PropertyTypeFloat32:
		return float32(0), nil
	case viewfile.PropertyTypeFloat64:
		return float64(0), nil
	case viewfile.PropertyTypeObject:
		return nil, nil
	case viewfile.PropertyTypeList:
		return make([]any, 0), nil
	case viewfile.PropertyTypeSet:
		return make(map[any]struct{}), nil
	}
	return nil, meh.NewBadInputErr(fmt.Sprintf("unsupported property type: %v", propertyType), nil)
}

// compileRule compiles the given declarative rule into a runtime validator for
// the given property. The dispatch is exhaustive over the closed rule set. An
// unsupported rule is a fatal configuration error.
func compileRule(rule viewfile.Rule, def viewfile.PropertyDef) (validation.Validator, error) {
	switch r := rule.(type) {
	case viewfile.RuleRequired:
		return compileRequiredRule(def)
	case viewfile.RuleMinLength:
		return compileMinLengthRule(r, def)
	case viewfile.RuleMaxLength:
		return compileMaxLengthRule(r, def)
	case viewfile.RuleRange:
		return compileRangeRule(r, def)
	case viewfile.RulePattern:
		return compilePatternRule(r, def)
	default:
		return nil, meh.NewInternalErr(fmt.Sprintf("unsupported rule type: %T", rule), meh.Details{
			"property_name": def.Name,
		})
	}
}

func requiredMessage(def viewfile.PropertyDef) validation.Message {
	return validation.NewError(def.Name, fmt.Sprintf("${%s} is required", def.Name)).WithCode("required")
}

func compileRequiredRule(def viewfile.PropertyDef) (validation.Validator, error) {
	switch def.Type {
	case viewfile.PropertyTypeString:
		return validation.StringFunc(func(val string, _ validation.ViewModel) validation.Message {
			if val == "" {
				return requiredMessage(def)
			}
			return validation.None
		}), nil
	case viewfile.PropertyTypeList:
		return validation.ListFunc(func(val []any, _ validation.ViewModel) validation.Message {
			if len(val) == 0 {
				return requiredMessage(def)
			}
			return validation.None
		}), nil
	case viewfile.PropertyTypeSet:
		return validation.SetFunc(func(val map[any]struct{}, _ validation.ViewModel) validation.Message {
			if len(val) == 0 {
				return requiredMessage(def)
			}
			return validation.None
		}), nil
	default:
		return validation.ObjectFunc(func(val any, _ validation.ViewModel) validation.Message {
			if val == nil {
				return requiredMessage(def)
			}
			return validation.None
		}), nil
	}
}

func compileMinLengthRule(rule viewfile.RuleMinLength, def viewfile.PropertyDef) (validation.Validator, error) {
	if def.Type != viewfile.PropertyTypeString {
		return nil, meh.NewBadInputErr(fmt.Sprintf("min-length rule requires a string property, got %v", def.Type), nil)
	}
	return validation.StringFunc(func(val string, _ validation.ViewModel) validation.Message {
		if len(val) < rule.Min {
			return validation.NewError(def.Name,
				fmt.Sprintf("${%s} must have at least %d characters", def.Name, rule.Min)).WithCode("min-length")
		}
		return validation.None
	}), nil
}

func compileMaxLengthRule(rule viewfile.RuleMaxLength, def viewfile.PropertyDef) (validation.Validator, error) {
	if def.Type != viewfile.PropertyTypeString {
		return nil, meh.NewBadInputErr(fmt.Sprintf("max-length rule requires a string property, got %v", def.Type), nil)
	}
	return validation.StringFunc(func(val string, _ validation.ViewModel) validation.Message {
		if len(val) > rule.Max {
			return validation.NewError(def.Name,
				fmt.Sprintf("${%s} must have at most %d characters", def.Name, rule.Max)).WithCode("max-length")
		}
		return validation.None
	}), nil
}

func compileRangeRule(rule viewfile.RuleRange, def viewfile.PropertyDef) (validation.Validator, error) {
	switch def.Type {
	case viewfile.PropertyTypeInt, viewfile.PropertyTypeInt64,
		viewfile.PropertyTypeFloat32, viewfile.PropertyTypeFloat64:
	default:
		return nil, meh.NewBadInputErr(fmt.Sprintf("range rule requires a numeric property, got %v", def.Type), nil)
	}
	return validation.Float64Func(func(val float64, _ validation.ViewModel) validation.Message {
		if val < rule.Min || val > rule.Max {
			return validation.NewError(def.Name,
				fmt.Sprintf("${%s} must be in range [%v, %v]", def.Name, rule.Min, rule.Max)).WithCode("range")
		}
		return validation.None
	}), nil
}

func compilePatternRule(rule viewfile.RulePattern, def viewfile.PropertyDef) (validation.Validator, error) {
	if def.Type != viewfile.PropertyTypeString {
		return nil, meh.NewBadInputErr(fmt.Sprintf("pattern rule requires a string property, got %v", def.Type), nil)
	}
	expr, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return nil, meh.NewBadInputErrFromErr(err, "compile pattern", meh.Details{"was": rule.Pattern})
	}
	return validation.StringFunc(func(val string, _ validation.ViewModel) validation.Message {
		if !expr.MatchString(val) {
			return validation.NewError(def.Name,
				fmt.Sprintf("${%s} must match %q", def.Name, expr.String())).WithCode("pattern")
		}
		return validation.None
	}), nil
}
