// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Values are resolved by viper in this order: TASKBOARD_* environment
// variables, then an optional config.yaml, then built-in defaults. The result
// is validated with go-playground/validator struct tags.
package config
