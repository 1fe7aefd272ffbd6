package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBindingsFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "bindings.json", `{"split": "Numpad1", "reset": "OSLeft"}`},
		{"yaml", "bindings.yaml", "split: Numpad1\nreset: OSLeft\n"},
		{"toml", "bindings.toml", "split = \"Numpad1\"\nreset = \"OSLeft\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadBindings(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"split": "Numpad1", "reset": "OSLeft"}, got)
		})
	}
}

func TestLoadBindingsRejectsUnsupportedFormat(t *testing.T) {
	_, err := loadBindings(writeFile(t, "bindings.ini", "split=Numpad1"))
	assert.ErrorContains(t, err, "unsupported bindings format")
}

func TestLoadBindingsRejectsNonStringToml(t *testing.T) {
	_, err := loadBindings(writeFile(t, "bindings.toml", "split = 7\n"))
	assert.ErrorContains(t, err, "is not a string")
}

func TestBindingsCheck(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		check := BindingsCheck{File: writeFile(t, "bindings.json",
			`{"split": "Numpad1", "reset": "VolumeUp", "pause": "A"}`)}
		assert.NoError(t, check.Run(discardLogger()))
	})

	t.Run("unknown keys are counted, not fatal mid-file", func(t *testing.T) {
		check := BindingsCheck{File: writeFile(t, "bindings.json",
			`{"split": "Numpad1", "reset": "NotARealKey", "pause": "keya"}`)}
		err := check.Run(discardLogger())
		assert.ErrorContains(t, err, "2 invalid binding(s)")
	})

	t.Run("missing file", func(t *testing.T) {
		check := BindingsCheck{File: filepath.Join(t.TempDir(), "nope.json")}
		assert.Error(t, check.Run(discardLogger()))
	})
}

func TestBindingsInitRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "bindings."+format)
			initCmd := BindingsInit{Format: format, Output: dest}
			require.NoError(t, initCmd.Run(discardLogger()))

			// The generated template must pass its own validation.
			check := BindingsCheck{File: dest}
			assert.NoError(t, check.Run(discardLogger()))

			// A second init without --force refuses to clobber.
			assert.Error(t, initCmd.Run(discardLogger()))
			initCmd.Force = true
			assert.NoError(t, initCmd.Run(discardLogger()))
		})
	}
}
