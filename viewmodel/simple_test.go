package viewmodel

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"
	"testing"
)

// SimpleSuite tests the Simple view model.
type SimpleSuite struct {
	suite.Suite
	vm *Simple
}

func (suite *SimpleSuite) SetupTest() {
	suite.vm = NewSimple(Options{})
	suite.vm.AddProperty("firstName", "")
	suite.vm.AddProperty("age", 54)
}

func (suite *SimpleSuite) TestAddPropertyMirrorsModelValue() {
	propertyValue, err := suite.vm.PropertyValue("age")
	suite.Require().NoError(err, "property value should not fail")
	suite.Equal(54, propertyValue, "property layer should hold initial value")
	modelValue, err := suite.vm.Value("age")
	suite.Require().NoError(err, "value should not fail")
	suite.Equal(54, modelValue, "model layer should hold initial value")
}

func (suite *SimpleSuite) TestAddPropertyIdempotent() {
	err := suite.vm.SetPropertyValue("age", 60)
	suite.Require().NoError(err, "set property value should not fail")
	suite.vm.AddProperty("age", 1)

	propertyValue, err := suite.vm.PropertyValue("age")
	suite.Require().NoError(err, "property value should not fail")
	suite.Equal(60, propertyValue, "adding a present name should not overwrite")
	suite.Equal([]string{"firstName", "age"}, suite.vm.PropertyNames(), "should not duplicate names")
}

func (suite *SimpleSuite) TestSetDoesNotTouchModelLayer() {
	err := suite.vm.SetPropertyValue("firstName", "Carl")
	suite.Require().NoError(err, "set property value should not fail")

	propertyValue, err := suite.vm.PropertyValue("firstName")
	suite.Require().NoError(err, "property value should not fail")
	suite.Equal("Carl", propertyValue, "property layer should hold new value")
	modelValue, err := suite.vm.Value("firstName")
	suite.Require().NoError(err, "value should not fail")
	suite.Equal("", modelValue, "model layer should keep committed value")
}

func (suite *SimpleSuite) TestSave() {
	err := suite.vm.SetPropertyValue("firstName", "Carl")
	suite.Require().NoError(err, "set property value should not fail")
	err = suite.vm.Save()
	suite.Require().NoError(err, "save should not fail")

	modelValue, err := suite.vm.Value("firstName")
	suite.Require().NoError(err, "value should not fail")
	suite.Equal("Carl", modelValue, "model layer should hold committed value")
}

func (suite *SimpleSuite) TestReset() {
	err := suite.vm.SetPropertyValue("age", 60)
	suite.Require().NoError(err, "set property value should not fail")
	suite.vm.Reset()

	propertyValue, err := suite.vm.PropertyValue("age")
	suite.Require().NoError(err, "property value should not fail")
	suite.Equal(54, propertyValue, "reset should restore committed value")
}

func (suite *SimpleSuite) TestResetIdempotent() {
	err := suite.vm.SetPropertyValue("age", 60)
	suite.Require().NoError(err, "set property value should not fail")
	suite.vm.Reset()
	suite.vm.Reset()

	propertyValue, err := suite.vm.PropertyValue("age")
	suite.Require().NoError(err, "property value should not fail")
	suite.Equal(54, propertyValue, "repeated reset should equal one reset")
}

func (suite *SimpleSuite) TestResetNotifiesOnlyChanged() {
	notifications := make([]string, 0)
	err := suite.vm.DoOnChange(func() {
		notifications = append(notifications, "firstName")
	}, "firstName")
	suite.Require().NoError(err, "register change listener should not fail")
	err = suite.vm.DoOnChange(func() {
		notifications = append(notifications, "age")
	}, "age")
	suite.Require().NoError(err, "register change listener should not fail")

	err = suite.vm.SetPropertyValue("age", 60)
	suite.Require().NoError(err, "set property value should not fail")
	notifications = notifications[:0]
	suite.vm.Reset()
	suite.Equal([]string{"age"}, notifications, "reset should notify only properties that changed")
}

func (suite *SimpleSuite) TestUnknownPropertyName() {
	_, err := suite.vm.Property("unknown")
	suite.Error(err, "property should fail")
	_, err = suite.vm.PropertyValue("unknown")
	suite.Error(err, "property value should fail")
	err = suite.vm.SetPropertyValue("unknown", 1)
	suite.Error(err, "set property value should fail")
	_, err = suite.vm.Value("unknown")
	suite.Error(err, "value should fail")
}

func (suite *SimpleSuite) TestDoOnChangeUnknownName() {
	invoked := 0
	err := suite.vm.DoOnChange(func() {
		invoked++
	}, "firstName", "unknown")
	suite.Require().Error(err, "register change listener should fail")

	err = suite.vm.SetPropertyValue("firstName", "Carl")
	suite.Require().NoError(err, "set property value should not fail")
	suite.Zero(invoked, "failed registration should not register any listener")
}

func (suite *SimpleSuite) TestDoOnChangeMultipleProperties() {
	invoked := 0
	err := suite.vm.DoOnChange(func() {
		invoked++
	}, "firstName", "age")
	suite.Require().NoError(err, "register change listener should not fail")
	suite.Zero(invoked, "action should not run at registration")

	err = suite.vm.SetPropertyValue("firstName", "Carl")
	suite.Require().NoError(err, "set property value should not fail")
	err = suite.vm.SetPropertyValue("age", 60)
	suite.Require().NoError(err, "set property value should not fail")
	suite.Equal(2, invoked, "action should run for each change")

	err = suite.vm.SetPropertyValue("age", 60)
	suite.Require().NoError(err, "set property value should not fail")
	suite.Equal(2, invoked, "action should not run for unchanged value")
}

func (suite *SimpleSuite) TestPropertyNamesOrder() {
	suite.vm.AddProperty("email", "")
	suite.Equal([]string{"firstName", "age", "email"}, suite.vm.PropertyNames(),
		"should keep registration order")
}

func TestSimple(t *testing.T) {
	suite.Run(t, new(SimpleSuite))
}

// Model values always equal the values of the last save, no matter how sets,
// saves and resets interleave.
func TestSimpleModelFollowsLastSave(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vm := NewSimple(Options{})
		vm.AddProperty("val", 0)
		lastSaved := 0
		current := 0
		ops := rapid.SliceOf(rapid.SampledFrom([]string{"set", "save", "reset"})).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case "set":
				current = rapid.Int().Draw(t, "new_value")
				require.NoError(t, vm.SetPropertyValue("val", current), "set property value should not fail")
			case "save":
				require.NoError(t, vm.Save(), "save should not fail")
				lastSaved = current
			case "reset":
				vm.Reset()
				current = lastSaved
			}
			modelValue, err := vm.Value("val")
			require.NoError(t, err, "value should not fail")
			assert.Equal(t, lastSaved, modelValue, "model value should equal last saved value")
			propertyValue, err := vm.PropertyValue("val")
			require.NoError(t, err, "property value should not fail")
			assert.Equal(t, current, propertyValue, "property value should equal current value")
		}
	})
}
