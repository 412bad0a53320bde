// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Everything is optional: with no file the office reads stdin and logs at
// the environment defaults. The limits block exists so deployments can
// assert the protocol constants they were written against.
package config
