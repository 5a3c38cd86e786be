package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const KeymapFileName = "keys.toml"

// Keymap holds user key rebindings: key string to action name, e.g.
//
//	[bindings]
//	"x" = "delete"
//	"ctrl+r" = "refresh"
type Keymap struct {
	Bindings map[string]string `toml:"bindings"`
}

// LoadKeymap reads the keymap override file from the config directory.
// A missing file is not an error and yields an empty keymap.
func LoadKeymap() (*Keymap, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadKeymapFrom(filepath.Join(dir, KeymapFileName))
}

// LoadKeymapFrom reads a keymap from an explicit path.
func LoadKeymapFrom(path string) (*Keymap, error) {
	km := &Keymap{Bindings: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return km, nil
		}
		return nil, fmt.Errorf("failed to read keymap file: %w", err)
	}
	if err := toml.Unmarshal(data, km); err != nil {
		return nil, fmt.Errorf("failed to parse keymap file: %w", err)
	}
	if km.Bindings == nil {
		km.Bindings = map[string]string{}
	}
	return km, nil
}
