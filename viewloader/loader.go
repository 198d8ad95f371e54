package viewloader

import (
	"context"
	"fmt"
	"github.com/carldea/cognitive-sub001/viewfile"
	"github.com/carldea/cognitive-sub001/viewmodel"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// View is the opaque handle to a constructed view. Its concrete type belongs
// to the GUI toolkit behind the Factory.
type View any

// Slot is one declared view-model slot of a Controller: the name of the view
// model to inject and the assignment that receives it.
type Slot struct {
	Name   string
	Assign func(vm viewmodel.ViewModel)
}

// Controller is the contract a view's controller fulfills towards the loader.
// Instead of annotated fields discovered via reflection, a controller declares
// an explicit slots manifest that the loader fills exactly once during Load.
type Controller interface {
	// ViewModelSlots returns the slots to fill, in declaration order.
	ViewModelSlots() []Slot
}

// Factory constructs the actual view and its controller from a form
// definition. It is the boundary to the out-of-scope GUI toolkit.
type Factory interface {
	NewView(ctx context.Context, form viewfile.Form) (View, Controller, error)
}

// Loaded is the result of a completed Load: the constructed view and its
// controller with all view-model slots filled.
type Loaded struct {
	Form       viewfile.Form
	View       View
	Controller Controller
}

// Options for New.
type Options struct {
	// Logger for debug output. Defaults to a no-op logger.
	Logger *zap.Logger
	// Factory that constructs views and controllers.
	Factory Factory
	// Directory holding the view models available for injection.
	Directory *Directory
}

// Loader performs the one-shot wiring of declarative views: construct the
// view, fetch the controller, fill its declared view-model slots from the
// Directory. Create one with New.
type Loader struct {
	logger    *zap.Logger
	factory   Factory
	directory *Directory
}

// New creates a new Loader with the given Options.
func New(options Options) (*Loader, error) {
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.Factory == nil {
		return nil, meh.NewBadInputErr("missing factory", nil)
	}
	if options.Directory == nil {
		return nil, meh.NewBadInputErr("missing directory", nil)
	}
	return &Loader{
		logger:    options.Logger,
		factory:   options.Factory,
		directory: options.Directory,
	}, nil
}

// Load builds the view for the given form definition and injects view models
// into every slot the controller declares. The form is structurally validated
// first; findings are logged and errors abort the load. Missing directory
// entries, duplicate slot names and nil assignments are configuration errors.
func (loader *Loader) Load(ctx context.Context, form viewfile.Form) (Loaded, error) {
	// Verify the form definition.
	report := form.Validate()
	for _, issue := range report.Errors {
		loader.logger.Error(fmt.Sprintf("invalid form field: %s: %s", issue.Field, issue.Detail),
			zap.String("field", issue.Field),
			zap.Any("bad_value", issue.BadValue),
			zap.String("detail", issue.Detail))
	}
	for _, issue := range report.Warnings {
		loader.logger.Warn(fmt.Sprintf("form issue: %s", issue.Detail),
			zap.String("field", issue.Field),
			zap.Any("bad_value", issue.BadValue))
	}
	if report.HasErrors() {
		return Loaded{}, meh.NewBadInputErr("invalid form", meh.Details{
			"form_name": form.Name,
			"errors":    len(report.Errors),
			"warnings":  len(report.Warnings),
		})
	}
	// Build the view.
	view, controller, err := loader.factory.NewView(ctx, form)
	if err != nil {
		return Loaded{}, meh.Wrap(err, "new view", meh.Details{"form_name": form.Name})
	}
	// Fill the declared slots.
	seenSlotNames := make(map[string]struct{})
	for _, slot := range controller.ViewModelSlots() {
		if _, ok := seenSlotNames[slot.Name]; ok {
			return Loaded{}, meh.NewBadInputErr(fmt.Sprintf("duplicate view model slot: %q", slot.Name), nil)
		}
		seenSlotNames[slot.Name] = struct{}{}
		if slot.Assign == nil {
			return Loaded{}, meh.NewBadInputErr(fmt.Sprintf("view model slot %q without assignment", slot.Name), nil)
		}
		vm, err := loader.directory.Lookup(slot.Name)
		if err != nil {
			return Loaded{}, meh.Wrap(err, "look up view model for slot", meh.Details{
				"form_name": form.Name,
				"slot_name": slot.Name,
			})
		}
		slot.Assign(vm)
		loader.logger.Debug("injected view model",
			zap.String("form_name", form.Name),
			zap.String("slot_name", slot.Name))
	}
	return Loaded{
		Form:       form,
		View:       view,
		Controller: controller,
	}, nil
}

// LoadAll loads all given form definitions concurrently. Results keep the
// order of the given forms. Each view model still belongs to a single logical
// actor; LoadAll only parallelizes the wiring of independent views.
func (loader *Loader) LoadAll(ctx context.Context, forms []viewfile.Form) ([]Loaded, error) {
	loadedViews := make([]Loaded, len(forms))
	eg, ctx := errgroup.WithContext(ctx)
	for formNum, form := range forms {
		formNum, form := formNum, form
		eg.Go(func() error {
			loaded, err := loader.Load(ctx, form)
			if err != nil {
				return meh.Wrap(err, fmt.Sprintf("load form %q", form.Name), nil)
			}
			loadedViews[formNum] = loaded
			return nil
		})
	}
	err := eg.Wait()
	if err != nil {
		return nil, err
	}
	return loadedViews, nil
}
