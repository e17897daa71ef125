// Package config loads countryselect settings from YAML, env files and the
// environment.
package config
