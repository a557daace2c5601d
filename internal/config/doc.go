// Package config provides the configuration system for hecto.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← HECTO_LOG_LEVEL, HECTO_WELCOME, ...
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/hecto/config.toml (or .yaml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The sub-package loader reads each source into a nested map; Load merges
// the maps and copies the recognized settings into a typed Config.
//
// # Basic Usage
//
//	cfg, err := config.Load(
//	    config.WithPath(*configPath),
//	    config.WithOverrides(map[string]any{"logging.level": "debug"}),
//	)
//	if err != nil {
//	    return err
//	}
//	if cfg.Editor.ConfirmQuit {
//	    // ...
//	}
//
// # File Format
//
//	[logging]
//	level = "debug"
//	file = "/tmp/hecto.log"
//
//	[editor]
//	confirmQuit = true
//
//	[ui]
//	welcome = false
package config
