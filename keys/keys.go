package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyName is the name of a list-level action bound to one or more keys.
type KeyName int

const (
	KeyQuit KeyName = iota
	KeyClearSelection
	KeyRefresh
	KeyNew
	KeyComplete
	KeyDelete
	KeyPostpone
	KeyHelp

	KeyDown      // j, clamps at the last task
	KeyUp        // k, clamps at the first task
	KeyCycleDown // arrow, wraps past the end
	KeyCycleUp   // arrow, wraps past the start
	KeyFirst
	KeyLast

	KeyNextView
	KeyPrevView
	KeyEnterEditor
	KeyEdit
	KeyVisual
	KeyYank
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"q":         KeyQuit,
	"esc":       KeyClearSelection,
	"r":         KeyRefresh,
	"n":         KeyNew,
	"e":         KeyComplete,
	"d":         KeyDelete,
	"ctrl+p":    KeyPostpone,
	"?":         KeyHelp,
	"j":         KeyDown,
	"k":         KeyUp,
	"down":      KeyCycleDown,
	"up":        KeyCycleUp,
	"g":         KeyFirst,
	"home":      KeyFirst,
	"G":         KeyLast,
	"end":       KeyLast,
	"tab":       KeyNextView,
	"shift+tab": KeyPrevView,
	"l":         KeyEnterEditor,
	"right":     KeyEnterEditor,
	"enter":     KeyEdit,
	"v":         KeyVisual,
	"y":         KeyYank,
}

// GlobalkeyBindings is a global, immutable map of KeyName tot keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	KeyClearSelection: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear selection"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	KeyNew: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new task"),
	),
	KeyComplete: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "complete"),
	),
	KeyDelete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	KeyPostpone: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "postpone"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "down"),
	),
	KeyUp: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "up"),
	),
	KeyCycleDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down (wraps)"),
	),
	KeyCycleUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up (wraps)"),
	),
	KeyFirst: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	KeyLast: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	KeyNextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	KeyPrevView: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous view"),
	),
	KeyEnterEditor: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l", "edit inline"),
	),
	KeyEdit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit task"),
	),
	KeyVisual: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "visual select"),
	),
	KeyYank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy title"),
	),
}

// actionNames maps keymap-file action names to key names.
var actionNames = map[string]KeyName{
	"quit":            KeyQuit,
	"clear_selection": KeyClearSelection,
	"refresh":         KeyRefresh,
	"new":             KeyNew,
	"complete":        KeyComplete,
	"delete":          KeyDelete,
	"postpone":        KeyPostpone,
	"help":            KeyHelp,
	"down":            KeyDown,
	"up":              KeyUp,
	"cycle_down":      KeyCycleDown,
	"cycle_up":        KeyCycleUp,
	"first":           KeyFirst,
	"last":            KeyLast,
	"next_view":       KeyNextView,
	"prev_view":       KeyPrevView,
	"enter_editor":    KeyEnterEditor,
	"edit":            KeyEdit,
	"visual":          KeyVisual,
	"yank":            KeyYank,
}

// ApplyOverrides rebinds keys from a keymap file, mapping key strings to
// action names. Unknown action names are rejected; the existing binding for
// a remapped key is replaced and the bindings table is rebuilt so the
// status bar shows the effective keys.
func ApplyOverrides(overrides map[string]string) error {
	for keyStr, action := range overrides {
		name, ok := actionNames[action]
		if !ok {
			return fmt.Errorf("unknown action %q for key %q", action, keyStr)
		}
		GlobalKeyStringsMap[keyStr] = name
	}
	if len(overrides) > 0 {
		RebuildBindings()
	}
	return nil
}

// RebuildBindings regenerates GlobalkeyBindings from GlobalKeyStringsMap,
// keeping each action's help description. An action left with no key is
// disabled rather than dropped.
func RebuildBindings() {
	byName := make(map[KeyName][]string)
	for keyStr, name := range GlobalKeyStringsMap {
		byName[name] = append(byName[name], keyStr)
	}
	for name, binding := range GlobalkeyBindings {
		ks := byName[name]
		if len(ks) == 0 {
			GlobalkeyBindings[name] = key.NewBinding(key.WithDisabled())
			continue
		}
		sort.Strings(ks)
		GlobalkeyBindings[name] = key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(strings.Join(ks, "/"), binding.Help().Desc),
		)
	}
}
