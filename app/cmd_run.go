package app

import (
	"context"
	"fmt"
	"github.com/carldea/cognitive-sub001/formbuilder"
	"github.com/carldea/cognitive-sub001/formrunner"
	"github.com/carldea/cognitive-sub001/logging"
	"github.com/carldea/cognitive-sub001/viewfile"
	"github.com/carldea/cognitive-sub001/viewloader"
	"github.com/carldea/cognitive-sub001/viewmodel"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
	"sort"
)

// terminalView is the view the terminal factory produces. There is no widget
// tree to build, so it only remembers the form it was created for.
type terminalView struct {
	formName string
}

// terminalController declares one slot per view model the form defines and
// captures the injected view models for the runner.
type terminalController struct {
	slotNames  []string
	viewModels map[string]viewmodel.ViewModel
}

func (controller *terminalController) ViewModelSlots() []viewloader.Slot {
	slots := make([]viewloader.Slot, 0, len(controller.slotNames))
	for _, slotName := range controller.slotNames {
		slotName := slotName
		slots = append(slots, viewloader.Slot{
			Name: slotName,
			Assign: func(vm viewmodel.ViewModel) {
				controller.viewModels[slotName] = vm
			},
		})
	}
	return slots
}

// terminalFactory builds terminal views. It declares a slot for every view
// model in the form so that the loader injects all of them.
type terminalFactory struct{}

func (factory *terminalFactory) NewView(_ context.Context, form viewfile.Form) (viewloader.View, viewloader.Controller, error) {
	slotNames := make([]string, 0, len(form.ViewModels))
	for viewModelName := range form.ViewModels {
		slotNames = append(slotNames, viewModelName)
	}
	sort.Strings(slotNames)
	controller := &terminalController{
		slotNames:  slotNames,
		viewModels: make(map[string]viewmodel.ViewModel),
	}
	return terminalView{formName: form.Name}, controller, nil
}

// commandRun loads the form from the project, wires its view models and runs
// an interactive terminal session for each of them.
func commandRun(ctx context.Context, commandOpts commandOptions) error {
	form, err := viewfile.FromFile(commandOpts.Locator.FormFilename())
	if err != nil {
		return meh.Wrap(err, "form from file", meh.Details{"filename": commandOpts.Locator.FormFilename()})
	}
	directory, err := formbuilder.NewDirectory(commandOpts.Logger.Named("build"), form)
	if err != nil {
		return meh.Wrap(err, "build view model directory", meh.Details{"form_name": form.Name})
	}
	loader, err := viewloader.New(viewloader.Options{
		Logger:    commandOpts.Logger.Named("load"),
		Factory:   &terminalFactory{},
		Directory: directory,
	})
	if err != nil {
		return meh.Wrap(err, "new view loader", nil)
	}
	loaded, err := loader.Load(ctx, form)
	if err != nil {
		return meh.Wrap(err, "load form", meh.Details{"form_name": form.Name})
	}
	controller, ok := loaded.Controller.(*terminalController)
	if !ok {
		return meh.NewInternalErr(fmt.Sprintf("unexpected controller type: %T", loaded.Controller), nil)
	}

	if form.Description != "" {
		fmt.Println(form.Description)
	}
	for _, viewModelName := range controller.slotNames {
		vm, ok := controller.viewModels[viewModelName].(*viewmodel.Validation)
		if !ok {
			return meh.NewInternalErr(fmt.Sprintf("unexpected view model type for %q: %T",
				viewModelName, controller.viewModels[viewModelName]), nil)
		}
		runner, err := formrunner.New(formrunner.Options{
			Logger:    commandOpts.Logger.Named("run").Named(logging.WrapName(viewModelName)),
			Def:       form.ViewModels[viewModelName],
			ViewModel: vm,
		})
		if err != nil {
			return meh.Wrap(err, "new form runner", meh.Details{"view_model_name": viewModelName})
		}
		err = runner.Run(ctx)
		if err != nil {
			return meh.Wrap(err, "run form", meh.Details{"view_model_name": viewModelName})
		}
		printCommittedValues(viewModelName, vm)
	}
	commandOpts.Logger.Debug("form completed", zap.String("form_name", form.Name))
	return nil
}

func printCommittedValues(viewModelName string, vm *viewmodel.Validation) {
	fmt.Printf("%s:\n", viewModelName)
	for _, propertyName := range vm.PropertyNames() {
		value, err := vm.Value(propertyName)
		if err != nil {
			continue
		}
		fmt.Printf("  %s: %v\n", propertyName, value)
	}
}
