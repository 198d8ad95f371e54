// Package formrunner runs a form interactively in the terminal. It is the
// reference consumer of the binding layer: prompt input feeds the property
// layer, every change triggers re-validation, and values are committed via
// save once no error messages remain.
package formrunner

import (
	"context"
	"fmt"
	"github.com/carldea/cognitive-sub001/validation"
	"github.com/carldea/cognitive-sub001/viewfile"
	"github.com/carldea/cognitive-sub001/viewmodel"
	"github.com/lefinal/meh"
	"github.com/manifoldco/promptui"
	"go.uber.org/zap"
	"strconv"
	"strings"
)

// Prompter requests a single line of input from the user.
type Prompter interface {
	// Request prompts the user with the given label. If no input is provided,
	// the given default value is returned.
	Request(ctx context.Context, label string, defaultValue string) (string, error)
}

// Stdin is a Prompter over standard input.
type Stdin struct {
}

// Request prompts the user with the given label.
func (prompter *Stdin) Request(ctx context.Context, label string, defaultValue string) (string, error) {
	for {
		myPrompt := promptui.Prompt{
			Label:   label,
			Default: defaultValue,
		}
		result, err := myPrompt.Run()
		if err == nil {
			return result, nil
		}
		if shouldAbortPrompt(ctx, err) {
			return "", meh.NewBadInputErr("canceled", nil)
		}
		fmt.Println(createErrorMessage("invalid value entered", err, result))
	}
}

func shouldAbortPrompt(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	if err != nil && err.Error() == "^C" {
		return true
	}
	return false
}

func createErrorMessage(message string, err error, value string) string {
	errDescription := message
	if err.Error() != "" {
		errDescription += fmt.Sprintf(" (%s)", err.Error())
	}
	if value != "" {
		errDescription += fmt.Sprintf(": %s", value)
	}
	return errDescription
}

// Options for New.
type Options struct {
	// Logger for debug output. Defaults to a no-op logger.
	Logger *zap.Logger
	// Prompter for requesting input. Defaults to Stdin.
	Prompter Prompter
	// Def describes the properties to prompt for.
	Def viewfile.ViewModelDef
	// ViewModel is the validation view model backing the form.
	ViewModel *viewmodel.Validation
}

// Runner fills a validation view model from terminal input. Create one with
// New and run it with Run.
type Runner struct {
	logger   *zap.Logger
	prompter Prompter
	def      viewfile.ViewModelDef
	vm       *viewmodel.Validation
}

// New creates a new Runner with the given Options.
func New(options Options) (*Runner, error) {
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.Prompter == nil {
		options.Prompter = &Stdin{}
	}
	if options.ViewModel == nil {
		return nil, meh.NewBadInputErr("missing view model", nil)
	}
	return &Runner{
		logger:   options.Logger,
		prompter: options.Prompter,
		def:      options.Def,
		vm:       options.ViewModel,
	}, nil
}

// Run prompts for every property of the form, re-validating on each change
// and printing the property's messages, until a save pass commits without
// error messages or the context is done.
func (runner *Runner) Run(ctx context.Context) error {
	// Surface per-property messages as soon as a value changes.
	for _, propertyDef := range runner.def.Properties {
		propertyDef := propertyDef
		err := runner.vm.ValidateOnChange(propertyDef.Name, func(messages []validation.Message) {
			for _, message := range messages {
				fmt.Printf("  [%s] %s\n", message.Severity, runner.vm.Interpolate(message))
			}
		})
		if err != nil {
			return meh.Wrap(err, "register validate-on-change", meh.Details{"property_name": propertyDef.Name})
		}
	}
	for {
		if ctx.Err() != nil {
			return meh.NewBadInputErrFromErr(ctx.Err(), "context done", nil)
		}
		err := runner.promptAll(ctx)
		if err != nil {
			return meh.Wrap(err, "prompt all properties", nil)
		}
		err = runner.vm.Save()
		if err != nil {
			return meh.Wrap(err, "save", nil)
		}
		if runner.vm.HasNoErrorMsgs() {
			break
		}
		fmt.Println("form has validation errors:")
		for _, message := range runner.vm.ValidationMessages() {
			if message.Severity != validation.SeverityError {
				continue
			}
			fmt.Printf("  %s\n", runner.vm.Interpolate(message))
		}
	}
	runner.logger.Debug("form saved", zap.Int("property_count", len(runner.def.Properties)))
	return nil
}

func (runner *Runner) promptAll(ctx context.Context) error {
	for _, propertyDef := range runner.def.Properties {
		label := propertyDef.Name
		if friendlyName, ok := runner.vm.FriendlyName(propertyDef.Name); ok {
			label = friendlyName
		}
		currentValue, err := runner.vm.PropertyValue(propertyDef.Name)
		if err != nil {
			return meh.Wrap(err, "current property value", meh.Details{"property_name": propertyDef.Name})
		}
		rawValue, err := runner.prompter.Request(ctx, fmt.Sprintf("Enter %s", label), fmt.Sprintf("%v", currentValue))
		if err != nil {
			return meh.Wrap(err, "request input", meh.Details{"property_name": propertyDef.Name})
		}
		val, err := ParseValue(propertyDef.Type, rawValue)
		if err != nil {
			fmt.Println(createErrorMessage("invalid value entered", err, rawValue))
			continue
		}
		err = runner.vm.SetPropertyValue(propertyDef.Name, val)
		if err != nil {
			return meh.Wrap(err, "set property value", meh.Details{"property_name": propertyDef.Name})
		}
	}
	return nil
}

// ParseValue parses raw terminal input into a value of the given property
// type. Lists and sets use comma-separated elements.
func ParseValue(propertyType viewfile.PropertyType, raw string) (any, error) {
	switch propertyType {
	case viewfile.PropertyTypeBool:
		val, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, meh.NewBadInputErrFromErr(err, "parse bool", meh.Details{"was": raw})
		}
		return val, nil
	case viewfile.PropertyTypeString:
		return raw, nil
	case viewfile.PropertyTypeInt:
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, meh.NewBadInputErrFromErr(err, "parse int", meh.Details{"was": raw})
		}
		return val, nil
	case viewfile.PropertyTypeInt64:
		val, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, meh.NewBadInputErrFromErr(err, "parse int64", meh.Details{"was": raw})
		}
		return val, nil
	case viewfile.PropertyTypeFloat32:
		val, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, meh.NewBadInputErrFromErr(err, "parse float32", meh.Details{"was": raw})
		}
		return float32(val), nil
	case viewfile.PropertyTypeFloat64:
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, meh.NewBadInputErrFromErr(err, "parse float64", meh.Details{"was": raw})
		}
		return val, nil
	case viewfile.PropertyTypeObject:
		return raw, nil
	case viewfile.PropertyTypeList:
		return splitElements(raw), nil
	case viewfile.PropertyTypeSet:
		set := make(map[any]struct{})
		for _, element := range splitElements(raw) {
			set[element] = struct{}{}
		}
		return set, nil
	}
	return nil, meh.NewBadInputErr(fmt.Sprintf("unsupported property type: %v", propertyType), nil)
}

func splitElements(raw string) []any {
	if strings.TrimSpace(raw) == "" {
		return make([]any, 0)
	}
	elements := make([]any, 0)
	for _, element := range strings.Split(raw, ",") {
		elements = append(elements, strings.TrimSpace(element))
	}
	return elements
}
