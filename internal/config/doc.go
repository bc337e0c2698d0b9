// Package config loads the generation request from a YAML manifest and CLI
// flags with precedence: CLI flags > manifest > defaults. It validates the
// request before any resolution happens, so malformed constant definitions
// fail fast with a usage error instead of a partial generated file.
package config
