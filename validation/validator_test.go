package validation

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestApplyTypedExtraction(t *testing.T) {
	tests := []struct {
		name      string
		val       any
		validator func(record func(val any)) Validator
		wantVal   any
	}{
		{
			name: "bool",
			val:  true,
			validator: func(record func(val any)) Validator {
				return BoolFunc(func(val bool, _ ViewModel) Message {
					record(val)
					return None
				})
			},
			wantVal: true,
		},
		{
			name: "string",
			val:  "hello",
			validator: func(record func(val any)) Validator {
				return StringFunc(func(val string, _ ViewModel) Message {
					record(val)
					return None
				})
			},
			wantVal: "hello",
		},
		{
			name: "int from float64",
			val:  54.0,
			validator: func(record func(val any)) Validator {
				return IntFunc(func(val int, _ ViewModel) Message {
					record(val)
					return None
				})
			},
			wantVal: 54,
		},
		{
			name: "int64 from int",
			val:  54,
			validator: func(record func(val any)) Validator {
				return Int64Func(func(val int64, _ ViewModel) Message {
					record(val)
					return None
				})
			},
			wantVal: int64(54),
		},
		{
			name: "float32",
			val:  1.5,
			validator: func(record func(val any)) Validator {
				return Float32Func(func(val float32, _ ViewModel) Message {
					record(val)
					return None
				})
			},
			wantVal: float32(1.5),
		},
		{
			name: "float64 from int",
			val:  54,
			validator: func(record func(val any)) Validator {
				return Float64Func(func(val float64, _ ViewModel) Message {
					record(val)
					return None
				})
			},
			wantVal: float64(54),
		},
		{
			name: "object passes value through",
			val:  map[string]any{"k": "v"},
			validator: func(record func(val any)) Validator {
				return ObjectFunc(func(val any, _ ViewModel) Message {
					record(val)
					return None
				})
			},
			wantVal: map[string]any{"k": "v"},
		},
		{
			name: "list",
			val:  []any{"a", "b"},
			validator: func(record func(val any)) Validator {
				return ListConsumer(func(val []any, _ *Result, _ ViewModel) {
					record(val)
				})
			},
			wantVal: []any{"a", "b"},
		},
		{
			name: "set",
			val:  map[any]struct{}{"a": {}},
			validator: func(record func(val any)) Validator {
				return SetConsumer(func(val map[any]struct{}, _ *Result, _ ViewModel) {
					record(val)
				})
			},
			wantVal: map[any]struct{}{"a": {}},
		},
		{
			name: "custom passes value through",
			val:  "anything",
			validator: func(record func(val any)) Validator {
				return CustomConsumer(func(val any, _ *Result, _ ViewModel) {
					record(val)
				})
			},
			wantVal: "anything",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenVal any
			result := NewResult("myProp")
			err := apply(tt.validator(func(val any) { seenVal = val }), tt.val, result, nil)
			require.NoError(t, err, "apply should not fail")
			assert.Equal(t, tt.wantVal, seenVal, "validator should see the converted value")
			assert.Empty(t, result.Messages(), "satisfied validator should add no messages")
		})
	}
}

func TestApplyFuncMessage(t *testing.T) {
	result := NewResult("myProp")
	err := apply(StringFunc(func(val string, _ ViewModel) Message {
		return NewError("", fmt.Sprintf("%q is no good", val))
	}), "bad", result, nil)
	require.NoError(t, err, "apply should not fail")
	require.Len(t, result.Messages(), 1, "function style should add its message")
	assert.Equal(t, `"bad" is no good`, result.Messages()[0].Template, "should add correct message")
}

func TestApplyUnrecognizedKind(t *testing.T) {
	result := NewResult("myProp")
	err := apply(bogusValidator{}, nil, result, nil)
	assert.Error(t, err, "apply should fail for unrecognized validator kind")
}
