// Package config defines the top-level CLI structure parsed by Kong.
package config

import "github.com/splitkey/splitkey/internal/cmd"

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info" env:"SPLITKEY_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"SPLITKEY_LOG_FILE"`
}

// CLI is the root command. Values may come from flags, environment
// variables, or a JSON/YAML/TOML configuration file, in that priority.
type CLI struct {
	Config string    `help:"Path to a configuration file" short:"c" type:"path"`
	Log    LogConfig `embed:"" prefix:"log."`

	Inspect  cmd.Inspect         `cmd:"" help:"Show the class and display labels of a key"`
	List     cmd.List            `cmd:"" help:"List the known keys"`
	Bindings cmd.BindingsCommand `cmd:"" help:"Work with hotkey bindings files"`
}
