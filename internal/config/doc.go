// Package config defines the optional YAML settings of loudness-probe and
// provides helpers to load, validate and save them.
package config
