package viewloader

import (
	"context"
	"github.com/carldea/cognitive-sub001/viewfile"
	"github.com/carldea/cognitive-sub001/viewmodel"
	"github.com/lefinal/meh"
	"github.com/lefinal/zaprec"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"testing"
)

// testView is the view the test factory produces.
type testView struct {
	formName string
}

// testController captures injected view models for assertions.
type testController struct {
	slots      []Slot
	viewModels map[string]viewmodel.ViewModel
}

func newTestController(slotNames ...string) *testController {
	controller := &testController{
		slots:      make([]Slot, 0, len(slotNames)),
		viewModels: make(map[string]viewmodel.ViewModel),
	}
	for _, slotName := range slotNames {
		slotName := slotName
		controller.slots = append(controller.slots, Slot{
			Name: slotName,
			Assign: func(vm viewmodel.ViewModel) {
				controller.viewModels[slotName] = vm
			},
		})
	}
	return controller
}

func (controller *testController) ViewModelSlots() []Slot {
	return controller.slots
}

// testFactory returns the prepared controller for every form. With
// newController set, every view gets a fresh one instead.
type testFactory struct {
	controller    Controller
	newController func() Controller
	fail          bool
}

func (factory *testFactory) NewView(_ context.Context, form viewfile.Form) (View, Controller, error) {
	if factory.fail {
		return nil, nil, meh.NewInternalErr("sad life", nil)
	}
	controller := factory.controller
	if factory.newController != nil {
		controller = factory.newController()
	}
	return testView{formName: form.Name}, controller, nil
}

func validForm(name string) viewfile.Form {
	return viewfile.Form{
		Name:       name,
		Controller: "myController",
		ViewModels: map[string]viewfile.ViewModelDef{
			"person": {Properties: []viewfile.PropertyDef{{Name: "firstName", Type: viewfile.PropertyTypeString}}},
		},
	}
}

// LoadSuite tests Loader.Load.
type LoadSuite struct {
	suite.Suite
	logger     *zap.Logger
	records    *zaprec.RecordStore
	directory  *Directory
	controller *testController
	personVM   *viewmodel.Simple
}

func (suite *LoadSuite) SetupTest() {
	suite.logger, suite.records = zaprec.NewRecorder(zap.DebugLevel)
	suite.directory = NewDirectory()
	suite.personVM = viewmodel.NewSimple(viewmodel.Options{})
	suite.Require().NoError(suite.directory.Register("person", suite.personVM), "register should not fail")
	suite.controller = newTestController("person")
}

func (suite *LoadSuite) TearDownTest() {
	if suite.T().Failed() {
		suite.records.DumpToLogger(zap.NewExample())
	}
}

func (suite *LoadSuite) newLoader(factory Factory) *Loader {
	loader, err := New(Options{
		Logger:    suite.logger,
		Factory:   factory,
		Directory: suite.directory,
	})
	suite.Require().NoError(err, "create should not fail")
	return loader
}

func (suite *LoadSuite) TestOK() {
	loader := suite.newLoader(&testFactory{controller: suite.controller})
	loaded, err := loader.Load(context.Background(), validForm("registration"))
	suite.Require().NoError(err, "load should not fail")
	suite.Equal(testView{formName: "registration"}, loaded.View, "should return constructed view")
	suite.Same(Controller(suite.controller), loaded.Controller, "should return controller")
	suite.Same(viewmodel.ViewModel(suite.personVM), suite.controller.viewModels["person"],
		"should inject the registered view model")
}

func (suite *LoadSuite) TestInvalidForm() {
	loader := suite.newLoader(&testFactory{controller: suite.controller})
	_, err := loader.Load(context.Background(), viewfile.Form{})
	suite.Error(err, "load should fail for invalid form")
}

func (suite *LoadSuite) TestFactoryFails() {
	loader := suite.newLoader(&testFactory{fail: true})
	_, err := loader.Load(context.Background(), validForm("registration"))
	suite.Error(err, "load should fail when view construction fails")
}

func (suite *LoadSuite) TestUnknownSlotName() {
	suite.controller = newTestController("person", "unknown")
	loader := suite.newLoader(&testFactory{controller: suite.controller})
	_, err := loader.Load(context.Background(), validForm("registration"))
	suite.Error(err, "load should fail for slot without directory entry")
}

func (suite *LoadSuite) TestDuplicateSlotName() {
	suite.controller = newTestController("person", "person")
	loader := suite.newLoader(&testFactory{controller: suite.controller})
	_, err := loader.Load(context.Background(), validForm("registration"))
	suite.Error(err, "load should fail for duplicate slot names")
}

func (suite *LoadSuite) TestSlotWithoutAssignment() {
	suite.controller.slots[0].Assign = nil
	loader := suite.newLoader(&testFactory{controller: suite.controller})
	_, err := loader.Load(context.Background(), validForm("registration"))
	suite.Error(err, "load should fail for slot without assignment")
}

func (suite *LoadSuite) TestLoadAll() {
	loader := suite.newLoader(&testFactory{newController: func() Controller {
		return newTestController("person")
	}})
	forms := []viewfile.Form{validForm("first"), validForm("second"), validForm("third")}
	loadedViews, err := loader.LoadAll(context.Background(), forms)
	suite.Require().NoError(err, "load all should not fail")
	suite.Require().Len(loadedViews, 3, "should load all forms")
	for i, loaded := range loadedViews {
		suite.Equal(forms[i].Name, loaded.Form.Name, "results should keep form order")
	}
}

func (suite *LoadSuite) TestLoadAllFails() {
	loader := suite.newLoader(&testFactory{newController: func() Controller {
		return newTestController("person")
	}})
	forms := []viewfile.Form{validForm("first"), {}}
	_, err := loader.LoadAll(context.Background(), forms)
	suite.Error(err, "load all should fail when any form fails")
}

func TestLoad(t *testing.T) {
	suite.Run(t, new(LoadSuite))
}

func TestNewMissingOptions(t *testing.T) {
	_, err := New(Options{Directory: NewDirectory()})
	if err == nil {
		t.Error("create without factory should fail")
	}
	_, err = New(Options{Factory: &testFactory{}})
	if err == nil {
		t.Error("create without directory should fail")
	}
}
