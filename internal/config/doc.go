// Package config assembles the mesasync daemon configuration from three
// layers: command-line flags, environment variables, and an optional JSON
// file, merged in that precedence order (flags win). The merged result is
// validated before use; missing required settings are reported together.
package config
