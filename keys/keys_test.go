package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryNamedKeyHasABinding(t *testing.T) {
	for keyStr, name := range GlobalKeyStringsMap {
		_, ok := GlobalkeyBindings[name]
		assert.True(t, ok, "key %q maps to unbound action %d", keyStr, name)
	}
}

func TestApplyOverrides_RebindsKey(t *testing.T) {
	orig := GlobalKeyStringsMap["x"]
	defer func() {
		if orig == 0 {
			delete(GlobalKeyStringsMap, "x")
		} else {
			GlobalKeyStringsMap["x"] = orig
		}
		RebuildBindings()
	}()

	require.NoError(t, ApplyOverrides(map[string]string{"x": "delete"}))
	assert.Equal(t, KeyDelete, GlobalKeyStringsMap["x"])

	// The bindings table follows, so the status bar shows the new key.
	assert.Contains(t, GlobalkeyBindings[KeyDelete].Keys(), "x")
	assert.Contains(t, GlobalkeyBindings[KeyDelete].Help().Key, "x")
}

func TestApplyOverrides_UnknownAction(t *testing.T) {
	err := ApplyOverrides(map[string]string{"x": "explode"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explode")
}
