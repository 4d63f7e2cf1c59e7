// Package config loads application configuration from environment
// variables with sensible development defaults. Call Load then Validate
// at startup; Validate reports every problem at once rather than the
// first one found.
package config
