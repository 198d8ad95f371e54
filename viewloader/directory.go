// Package viewloader provides the wiring step between declarative views and
// view models: a Directory of named view-model instances and a Loader that
// builds a view via an external factory, asks its controller for the declared
// view-model slots and fills every slot from the Directory. The wiring is a
// one-shot step at view-construction time; controllers declare their slots
// explicitly instead of relying on reflective field scanning.
package viewloader

import (
	"fmt"
	"github.com/carldea/cognitive-sub001/viewmodel"
	"github.com/lefinal/meh"
)

// Directory holds named view-model instances for injection. The loader
// queries it by the slot names a controller declares.
type Directory struct {
	order      []string
	viewModels map[string]viewmodel.ViewModel
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{
		order:      make([]string, 0),
		viewModels: make(map[string]viewmodel.ViewModel),
	}
}

// Register adds the given view model under the given name. Registering a name
// twice is a configuration error.
func (directory *Directory) Register(name string, vm viewmodel.ViewModel) error {
	if _, ok := directory.viewModels[name]; ok {
		return meh.NewBadInputErr(fmt.Sprintf("duplicate view model name: %q", name), nil)
	}
	directory.viewModels[name] = vm
	directory.order = append(directory.order, name)
	return nil
}

// Lookup returns the view model registered under the given name.
func (directory *Directory) Lookup(name string) (viewmodel.ViewModel, error) {
	vm, ok := directory.viewModels[name]
	if !ok {
		return nil, meh.NewNotFoundErr(fmt.Sprintf("unknown view model: %q", name), nil)
	}
	return vm, nil
}

// Names returns all registered names in registration order.
func (directory *Directory) Names() []string {
	names := make([]string, len(directory.order))
	copy(names, directory.order)
	return names
}
