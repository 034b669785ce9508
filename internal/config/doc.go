// Package config provides configuration for the extractor CLI.
//
// Settings load from three layers, later layers winning:
//
//  1. struct defaults (the `default` behavior lives in Default())
//  2. an optional YAML file (config.yaml next to the binary)
//  3. CBFX_* environment variables via envconfig
//
// The extraction core never reads configuration or the environment;
// only cmd/extractor consumes this package and passes plain values
// down.
package config
