// Package config loads the optional rainy settings file (YAML).
//
// Every field has a built-in default, so running without a settings file
// behaves exactly like an empty one.
package config
