// Package config manages user-level settings stored at ~/.postkit/config.yaml.
// It resolves the effective Settings from defaults, the config file, and
// POSTKIT_* environment variables, validates the file against an embedded
// JSON Schema, and checks the optional "requires" version constraint.
package config
