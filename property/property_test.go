package property

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
	"testing"
)

func TestPropertySet(t *testing.T) {
	tests := []struct {
		initialValue any
		newValue     any
		wantNotify   bool
	}{
		{
			initialValue: "hello",
			newValue:     "world",
			wantNotify:   true,
		},
		{
			initialValue: "hello",
			newValue:     "hello",
			wantNotify:   false,
		},
		{
			initialValue: 1,
			newValue:     2,
			wantNotify:   true,
		},
		{
			initialValue: nil,
			newValue:     nil,
			wantNotify:   false,
		},
		{
			initialValue: nil,
			newValue:     "set",
			wantNotify:   true,
		},
		{
			initialValue: []any{"a", "b"},
			newValue:     []any{"a", "b"},
			wantNotify:   false,
		},
		{
			initialValue: []any{"a", "b"},
			newValue:     []any{"a", "b", "c"},
			wantNotify:   true,
		},
	}

	for testNum, tt := range tests {
		t.Run(fmt.Sprintf("test#%d", testNum), func(t *testing.T) {
			prop := New("my-prop", tt.initialValue)
			notified := false
			prop.OnChange(func(oldValue any, newValue any) {
				notified = true
				assert.Equal(t, tt.initialValue, oldValue, "should pass old value")
				assert.Equal(t, tt.newValue, newValue, "should pass new value")
			})
			prop.Set(tt.newValue)
			assert.Equal(t, tt.wantNotify, notified, "should notify as expected")
			assert.Equal(t, tt.newValue, prop.Value(), "should hold new value")
		})
	}
}

func TestPropertyOnChangeNotInvokedAtRegistration(t *testing.T) {
	prop := New("my-prop", "initial")
	invoked := 0
	prop.OnChange(func(_ any, _ any) {
		invoked++
	})
	assert.Zero(t, invoked, "should not invoke listener at registration")
}

func TestPropertyOnChangeOrder(t *testing.T) {
	prop := New("my-prop", 0)
	invocations := make([]string, 0)
	prop.OnChange(func(_ any, _ any) {
		invocations = append(invocations, "first")
	})
	prop.OnChange(func(_ any, _ any) {
		invocations = append(invocations, "second")
	})
	prop.Set(1)
	assert.Equal(t, []string{"first", "second"}, invocations, "should invoke listeners in registration order")
}

func TestPropertySetAlwaysHoldsLastValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prop := New("my-prop", rapid.Int().Draw(t, "initial_value"))
		values := rapid.SliceOf(rapid.Int()).Draw(t, "values")
		for _, val := range values {
			prop.Set(val)
			assert.Equal(t, val, prop.Value(), "should hold last set value")
		}
	})
}

func TestPropertyTypedAccess(t *testing.T) {
	prop := New("my-prop", 3.5)
	assert.Equal(t, 3.5, prop.AsFloat64(), "float64 access should return value")
	assert.EqualValues(t, 3.5, prop.AsFloat32(), "float32 access should return converted value")
	assert.Equal(t, 3, prop.AsInt(), "int access should return truncated value")
	assert.Equal(t, int64(3), prop.AsInt64(), "int64 access should return truncated value")
	assert.Equal(t, "", prop.AsString(), "string access on numeric value should return zero value")
	assert.False(t, prop.AsBool(), "bool access on numeric value should return zero value")
}

func TestPropertyString(t *testing.T) {
	prop := New("my-prop", 123)
	assert.Equal(t, "my-prop=123", prop.String(), "should format name and value")
}
