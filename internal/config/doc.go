// Package config provides the configuration system for Keyline.
//
// # Layers
//
// Configuration is assembled from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← KEYLINE_EDITOR_TAB_SIZE=2
//	├─────────────────────────────┤
//	│  2. Config File             │  ← config.toml / config.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Maps from the file and the environment are deep merged, decoded onto the
// defaults and validated. Command line flags are applied by the caller on
// the returned Config.
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable loading
//   - watcher: live reload of the config file
package config
