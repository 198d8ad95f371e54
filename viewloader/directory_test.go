package viewloader

import (
	"github.com/carldea/cognitive-sub001/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDirectoryRegisterAndLookup(t *testing.T) {
	directory := NewDirectory()
	person := viewmodel.NewSimple(viewmodel.Options{})
	require.NoError(t, directory.Register("person", person), "register should not fail")

	vm, err := directory.Lookup("person")
	require.NoError(t, err, "lookup should not fail")
	assert.Same(t, person, vm, "lookup should return the registered instance")
}

func TestDirectoryRegisterDuplicate(t *testing.T) {
	directory := NewDirectory()
	require.NoError(t, directory.Register("person", viewmodel.NewSimple(viewmodel.Options{})),
		"register should not fail")
	err := directory.Register("person", viewmodel.NewSimple(viewmodel.Options{}))
	assert.Error(t, err, "duplicate register should fail")
}

func TestDirectoryLookupUnknown(t *testing.T) {
	directory := NewDirectory()
	_, err := directory.Lookup("unknown")
	assert.Error(t, err, "lookup should fail")
}

func TestDirectoryNamesOrder(t *testing.T) {
	directory := NewDirectory()
	require.NoError(t, directory.Register("zebra", viewmodel.NewSimple(viewmodel.Options{})), "register should not fail")
	require.NoError(t, directory.Register("person", viewmodel.NewSimple(viewmodel.Options{})), "register should not fail")
	assert.Equal(t, []string{"zebra", "person"}, directory.Names(), "should keep registration order")
}
