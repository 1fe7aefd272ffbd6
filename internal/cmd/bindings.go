package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/splitkey/splitkey/internal/configpaths"
	"github.com/splitkey/splitkey/keycode"
)

// BindingsCommand groups the hotkey bindings subcommands.
type BindingsCommand struct {
	Check BindingsCheck `cmd:"" help:"Validate the key names in a bindings file"`
	Init  BindingsInit  `cmd:"" help:"Generate a bindings file template"`
}

// BindingsCheck validates that every key name in a bindings file parses to
// a known key.
type BindingsCheck struct {
	File string `arg:"" help:"Bindings file (.json, .yaml or .toml) mapping actions to key names" type:"existingfile"`
}

// Run is called by Kong when the bindings check command is executed.
func (b *BindingsCheck) Run(logger *slog.Logger) error {
	bindings, err := loadBindings(b.File)
	if err != nil {
		return err
	}

	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	bad := 0
	for _, action := range actions {
		name := bindings[action]
		code, err := keycode.Parse(name)
		if err != nil {
			// An unknown key invalidates the binding, not the whole file.
			logger.Error("unknown key in binding", "action", action, "key", name)
			bad++
			continue
		}
		logger.Info("binding ok",
			"action", action,
			"key", code.Name(),
			"class", code.Class().String(),
			"label", code.Label(),
		)
	}

	if bad > 0 {
		return fmt.Errorf("%d invalid binding(s) in %s", bad, b.File)
	}
	logger.Info("all bindings valid", "file", b.File, "count", len(actions))
	return nil
}

func loadBindings(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return m, nil
	case ".yaml", ".yml":
		var m map[string]string
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return m, nil
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		m := make(map[string]string, len(tree.Keys()))
		for _, action := range tree.Keys() {
			name, ok := tree.Get(action).(string)
			if !ok {
				return nil, fmt.Errorf("parse %s: binding %q is not a string", path, action)
			}
			m[action] = name
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported bindings format %q (want .json, .yaml or .toml)", ext)
	}
}

// BindingsInit scaffolds a bindings file with the usual timer hotkeys.
type BindingsInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to bindings.<format>)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run is called by Kong when the bindings init command is executed.
func (b *BindingsInit) Run(logger *slog.Logger) error {
	root := map[string]any{
		"split":                 keycode.Numpad1.Name(),
		"skip-split":            keycode.Numpad2.Name(),
		"reset":                 keycode.Numpad3.Name(),
		"pause":                 keycode.Numpad5.Name(),
		"undo-split":            keycode.Numpad8.Name(),
		"toggle-global-hotkeys": keycode.Numpad9.Name(),
	}

	dest := b.Output
	if dest == "" {
		dest = "bindings." + b.Format
	}
	if !b.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch b.Format {
	case "json":
		data, err = json.MarshalIndent(root, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote bindings template", "file", dest)
	return nil
}
