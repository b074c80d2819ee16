// Package app wires application dependencies for the CLI.
//
// Config is assembled from built-in defaults, an optional YAML file and
// command-line overrides. NewWire turns it into the concrete logger, metrics
// registry, keystore codec, file store and wallet service, exposed via the
// Wire struct for commands to use.
package app
